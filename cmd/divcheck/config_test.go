// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "divcheck.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("DIVCHECK_SEED", "42")
	t.Setenv("DIVCHECK_ITERATIONS", "7")
	cfg, err := loadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 7, cfg.Iterations)
}

func TestLoadConfigEnvChangesAfterFirstLoad(t *testing.T) {
	_, err := loadConfig("", nil)
	require.NoError(t, err)

	t.Setenv("DIVCHECK_SEED", "9")
	cfg, err := loadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), cfg.Seed)
}

func TestLoadConfigFileOverridesEnv(t *testing.T) {
	t.Setenv("DIVCHECK_ITERATIONS", "7")
	path := writeConfig(t, `
types = ["int8", "uint64"]
iterations = 11
max-length = 33
workers = 2
`)
	cfg, err := loadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"int8", "uint64"}, cfg.Types)
	assert.Equal(t, 11, cfg.Iterations)
	assert.Equal(t, 33, cfg.MaxLength)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, uint64(1), cfg.Seed)
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "iterations = 11\nseed = 5\n")
	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--iterations", "3", "--types", "int16"}))

	cfg, err := loadConfig(path, cmd.Flags())
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Iterations)
	assert.Equal(t, []string{"int16"}, cfg.Types)
	assert.Equal(t, uint64(5), cfg.Seed)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), nil)
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, "iterations = -1\n"), nil)
	assert.ErrorContains(t, err, "iterations")

	_, err = loadConfig(writeConfig(t, "types = [\"float32\"]\n"), nil)
	assert.ErrorContains(t, err, "float32")

	_, err = loadConfig(writeConfig(t, "types = [\"\"]\n"), nil)
	assert.ErrorContains(t, err, "no element types")
}

func TestParseTypes(t *testing.T) {
	got, err := parseTypes([]string{"int8, uint16", "INT8", "int32"})
	require.NoError(t, err)
	assert.Equal(t, []string{"int8", "uint16", "int32"}, got)

	got, err = parseTypes([]string{"int8", "all"})
	require.NoError(t, err)
	assert.Equal(t, typeNames(), got)
	assert.Len(t, got, 8)

	_, err = parseTypes([]string{"int8", "int128"})
	assert.ErrorContains(t, err, "int128")
}
