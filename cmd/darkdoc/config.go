package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

var errEmptyConfig = errors.New("empty config file")

// fileConfig mirrors the flag surface so a YAML file can set defaults that
// explicit flags still override.
type fileConfig struct {
	Theme       string  `yaml:"theme"`
	PageSize    string  `yaml:"page_size"`
	Margin      float64 `yaml:"margin"`
	FooterLabel string  `yaml:"footer_label"`
	CodeWidth   int     `yaml:"code_width"`
	Title       string  `yaml:"title"`
	Author      string  `yaml:"author"`
	Subject     string  `yaml:"subject"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, fmt.Errorf("%s: %w", path, errEmptyConfig)
	}
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
