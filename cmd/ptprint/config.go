package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/AlexStarov/ptraster-GoLang-lib/printer"
)

type fileConfig struct {
	Address      string `toml:"address"`
	Model        string `toml:"model"`
	TIFF         bool   `toml:"tiff"`
	TopMargin    int    `toml:"top_margin"`
	BottomMargin int    `toml:"bottom_margin"`
}

type config struct {
	Address string
	Model   printer.Model
	Job     printer.JobConfig
}

func defaultPrintConfig() config {
	return config{
		Job: printer.DefaultJobConfig(),
	}
}

func loadPrintConfig(path string) (config, error) {
	cfg := defaultPrintConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load print config: %w", err)
	}

	if meta.IsDefined("address") {
		cfg.Address = strings.TrimSpace(raw.Address)
	}

	if meta.IsDefined("model") {
		cfg.Model = printer.Model(strings.TrimSpace(raw.Model))
		cfg.Job.Model = cfg.Model
	}

	if meta.IsDefined("tiff") {
		if raw.TIFF {
			cfg.Job.Encoding = printer.EncodingTIFF
		} else {
			cfg.Job.Encoding = printer.EncodingRaw
		}
	}

	if meta.IsDefined("top_margin") {
		if raw.TopMargin < 0 {
			return config{}, fmt.Errorf("top_margin must not be negative: %d", raw.TopMargin)
		}
		cfg.Job.TopMargin = raw.TopMargin
	}

	if meta.IsDefined("bottom_margin") {
		if raw.BottomMargin < 0 {
			return config{}, fmt.Errorf("bottom_margin must not be negative: %d", raw.BottomMargin)
		}
		cfg.Job.BottomMargin = raw.BottomMargin
	}

	return cfg, nil
}
