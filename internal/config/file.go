// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for config files. Durations
// are written as strings such as "30s".
type StructuredFileConfig struct {
	Log struct {
		File  string `json:"file" yaml:"file"`
		Level string `json:"level" yaml:"level"`
	} `json:"log,omitempty" yaml:"log,omitempty"`

	Storage struct {
		Session struct {
			Driver string `json:"driver" yaml:"driver"`
			Path   string `json:"path" yaml:"path"`
			DSN    string `json:"dsn" yaml:"dsn"`
		} `json:"session,omitempty" yaml:"session,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url" yaml:"base_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		UserAgent      string   `json:"user_agent" yaml:"user_agent"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Output struct {
		Format string `json:"format" yaml:"format"`
		Copy   bool   `json:"copy" yaml:"copy"`
	} `json:"output,omitempty" yaml:"output,omitempty"`

	Workers struct {
		SpeedTestInterval Duration `json:"speedtest_interval" yaml:"speedtest_interval"`
		SpeedTestTimeout  Duration `json:"speedtest_timeout" yaml:"speedtest_timeout"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded as
// YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer file.Close()

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	cfg := &StructuredConfig{
		Log: Log{
			File:  fileCfg.Log.File,
			Level: fileCfg.Log.Level,
		},
		Storage: Storage{
			Session: Session{
				Driver: fileCfg.Storage.Session.Driver,
				Path:   fileCfg.Storage.Session.Path,
				DSN:    fileCfg.Storage.Session.DSN,
			},
		},
		Adapter: Adapter{
			BaseURL:        fileCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
			UserAgent:      fileCfg.Adapter.UserAgent,
		},
		Output: Output{
			Format: fileCfg.Output.Format,
			Copy:   fileCfg.Output.Copy,
		},
		Workers: Workers{
			SpeedTestInterval: time.Duration(fileCfg.Workers.SpeedTestInterval),
			SpeedTestTimeout:  time.Duration(fileCfg.Workers.SpeedTestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
