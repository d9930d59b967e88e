/*
Copyright 2022 Huawei Cloud Computing Technologies Co., Ltd.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

 http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"os"

	"github.com/bgosztonyi/Impala/lib/config"
	"github.com/bgosztonyi/Impala/lib/hs2"
	"github.com/bgosztonyi/Impala/lib/logger"
	"github.com/spf13/cobra"
)

const TsHS2Dump = "ts-hs2dump"

var (
	configPath string

	conf = config.NewHS2(config.AppDump)

	rootCmd = &cobra.Command{
		Use:   TsHS2Dump,
		Short: "HiveServer2 row set inspection tool",
		Long:  `ts-hs2dump decodes encoded HiveServer2 row set snapshots and prints them as tables`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig()
		},
		SilenceUsage: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path of the toml configuration file.")

	rootCmd.AddCommand(showCmd, statCmd, sampleCmd)
}

// loadConfig applies the configuration file and the HS2_* environment
// overrides. Logs are only written to files when a configuration is given.
func loadConfig() error {
	conf = config.NewHS2(config.AppDump)
	if err := config.Parse(conf, configPath); err != nil {
		return err
	}
	if err := conf.ApplyEnvOverrides(os.Getenv); err != nil {
		return err
	}
	if err := conf.Validate(); err != nil {
		return err
	}

	if configPath != "" {
		logger.InitLogger(conf.Logging)
	}
	hs2.Configure(conf.Codec)
	return nil
}
