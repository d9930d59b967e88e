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

package config

import (
	"os"
	"path"

	"github.com/BurntSushi/toml"
	itoml "github.com/influxdata/influxdb/toml"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const EnvPrefix = "HS2"

type Validator interface {
	Validate() error
}

type Config interface {
	ApplyEnvOverrides(func(string) string) error
	Validate() error
	GetLogging() *Logger
}

type App string

const (
	AppCodec App = "hs2codec"
	AppDump  App = "hs2dump"
)

// HS2 is the configuration of a process embedding the result-set codec.
type HS2 struct {
	Logging     Logger      `toml:"logging"`
	Codec       Codec       `toml:"codec"`
	ResultCache ResultCache `toml:"result-cache"`
}

func NewHS2(app App) *HS2 {
	return &HS2{
		Logging:     NewLogger(app),
		Codec:       NewCodec(),
		ResultCache: NewResultCache(),
	}
}

func (c *HS2) ApplyEnvOverrides(fn func(string) string) error {
	return itoml.ApplyEnvOverrides(fn, EnvPrefix, c)
}

func (c *HS2) Validate() error {
	items := []Validator{
		c.Logging,
		c.Codec,
		c.ResultCache,
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *HS2) GetLogging() *Logger {
	return &c.Logging
}

// Parse loads a TOML file into conf. An empty path keeps the defaults.
func Parse(conf Config, path string) error {
	if path == "" {
		return nil
	}

	return fromTomlFile(conf, path)
}

func fromTomlFile(c Config, p string) error {
	content, err := os.ReadFile(path.Clean(p))
	if err != nil {
		return errors.Wrapf(err, "read config %s", p)
	}

	dec := unicode.BOMOverride(transform.Nop)
	content, _, err = transform.Bytes(dec, content)
	if err != nil {
		return errors.Wrapf(err, "decode config %s", p)
	}
	return errors.Wrapf(fromToml(c, string(content)), "parse config %s", p)
}

func fromToml(c Config, input string) error {
	_, err := toml.Decode(input, c)
	return err
}
