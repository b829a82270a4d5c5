// Copyright (c) 2026 tjt263 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// config holds the run configuration. Values come from the optional
// YAML config file first; explicitly set command-line flags override
// them.
type config struct {
	Domains   string        `yaml:"domains"`
	Resolvers string        `yaml:"resolvers"`
	Types     string        `yaml:"types"`
	Timeout   time.Duration `yaml:"timeout"`
	Retries   int           `yaml:"retries"`
	Workers   int           `yaml:"workers"`
	QPS       int           `yaml:"qps"`
	Strategy  string        `yaml:"strategy"`
	Format    string        `yaml:"format"`
	Output    string        `yaml:"output"`
	Quiet     bool          `yaml:"quiet"`
}

// defaultConfig mirrors the defaults the original flag set documents.
func defaultConfig() config {
	return config{
		Domains:   "domains.txt",
		Resolvers: "resolvers.txt",
		Types:     "A,TXT,MX",
		Timeout:   5 * time.Second,
		Retries:   0,
		Workers:   1,
		Strategy:  "round-robin",
		Format:    "text",
	}
}

// loadConfigFile merges a YAML config file into cfg. Unknown keys are
// rejected so typos surface instead of being silently ignored.
func loadConfigFile(path string, cfg *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
