// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 wavebroker contributors
// SPDX-FileContributor: wavebroker

package mqtt

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// optionsFile is the on-disk shape of a standalone broker options file:
// just the Options struct nested under a server key, so the same file
// format can later grow sibling keys (logging, listeners) without
// breaking this loader.
//
// Note: fields must be exported for YAML/JSON unmarshalling to populate them.
type optionsFile struct {
	Server struct {
		Options `yaml:"options" json:"options"`
	} `yaml:"server" json:"server"`
}

// LoadOptionsFile reads broker Options from a YAML or JSON file, chosen by
// the file's extension (.json, otherwise YAML). An empty path is treated
// as "no file configured" rather than an error, returning a nil Options.
func LoadOptionsFile(path string) (*Options, error) {
	if path == "" {
		slog.Default().Debug("no options file path provided")
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file optionsFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	return &file.Server.Options, nil
}
