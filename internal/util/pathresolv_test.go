/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFile(t *testing.T) {
	wd, err := os.Getwd()
	assert.NoError(t, err)

	abs := filepath.Join(wd, "config", "config.toml")
	resolved, err := ResolveFile(abs)
	assert.NoError(t, err)
	assert.EqualValues(t, filepath.Clean(abs), resolved)

	resolved, err = ResolveFile("./config/config.toml")
	assert.NoError(t, err)
	assert.EqualValues(t, filepath.Clean(abs), resolved)
}

func TestResolveCreateFolder(t *testing.T) {
	tmp := t.TempDir()
	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(tmp))
	defer os.Chdir(wd)

	resolved, err := ResolveCreateFolder("./scratch/")
	assert.NoError(t, err)
	assert.EqualValues(t, filepath.Clean(filepath.Join(tmp, "scratch")), resolved)

	info, err := os.Stat(resolved)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
