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
)

// ResolveFile turns a relative or absolute path into a cleaned absolute
// path, resolved against the current working directory when it is not
// already absolute. Grounded on the path-resolution idiom FrankyGo's
// config package relies on (config.go calls util.ResolveFile(ConfFile)
// before handing the result to toml.DecodeFile) but never shipped in this
// retrieved copy.
func ResolveFile(file string) (string, error) {
	if filepath.IsAbs(file) {
		return filepath.Clean(file), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Clean(filepath.Join(wd, file)), nil
}

// ResolveCreateFolder resolves folder the same way ResolveFile resolves a
// file, then creates it (and any missing parents) if it does not already
// exist.
func ResolveCreateFolder(folder string) (string, error) {
	resolved, err := ResolveFile(folder)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(resolved, 0o755); err != nil {
		return "", err
	}
	return resolved, nil
}
