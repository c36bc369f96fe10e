/*
   Copyright 2025 The DIRPX Authors

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

// Package config loads the link-building configuration: the application
// host and the API base path / version. It is read once at start-up; the
// resulting values are baked into the links builders and never re-read.
package config

import (
	"fmt"
	"os"

	"dirpx.dev/problem/links"
	"gopkg.in/yaml.v3"
)

// Config holds everything the links package needs to build published URIs.
type Config struct {
	// Host is the absolute application origin, e.g. "https://example.com".
	// It must carry a scheme and a host; anything else aborts start-up.
	Host string `yaml:"host"`

	// APIBasePath is the path prefix of versioned resource URIs.
	APIBasePath string `yaml:"api_base_path"`

	// APIVersion is the version token inside resource URIs, e.g. "v1".
	APIVersion string `yaml:"api_version"`
}

// Defaults returns a Config with default values. Host has no sensible
// default and must always be provided.
func Defaults() *Config {
	return &Config{
		APIBasePath: "/api",
		APIVersion:  "v1",
	}
}

// Load reads the configuration from a YAML file and applies environment
// variable overrides (PROBLEM_HOST, PROBLEM_API_BASE_PATH,
// PROBLEM_API_VERSION).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration bytes on top of the defaults and applies
// environment variable overrides.
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PROBLEM_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("PROBLEM_API_BASE_PATH"); v != "" {
		cfg.APIBasePath = v
	}
	if v := os.Getenv("PROBLEM_API_VERSION"); v != "" {
		cfg.APIVersion = v
	}
}

// Validate checks the configuration the same way the links builders will:
// an invalid host or version here is exactly the error NewAPI would return
// later, surfaced at load time instead of first use.
func (c *Config) Validate() error {
	if _, err := links.NewAPI(c.Host, c.APIBasePath, c.APIVersion); err != nil {
		return err
	}
	return nil
}

// API builds the versioned API link builder from this configuration.
func (c *Config) API() (*links.API, error) {
	return links.NewAPI(c.Host, c.APIBasePath, c.APIVersion)
}

// Problems builds the problem-type link builder from this configuration.
func (c *Config) Problems() (*links.Problems, error) {
	return links.NewProblems(c.Host)
}
