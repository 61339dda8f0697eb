/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

// Package config holds globally available configuration variables which
// are either set by defaults, read from a config file, or set by command
// line options. Grounded on FrankyGo's internal/config/config.go: a conf
// struct decoded from a TOML file via github.com/BurntSushi/toml, a
// globally reachable Settings value, a log-level knob, and a
// reflection-based String() dumper for diagnostics - generalized here from
// an Eval/Search sub-section pair to the Game sub-section a move-generation
// core actually needs (move-rule limit, checkmate-disabling thresholds,
// promotion ranks, world border).
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/infinite-chess/movecore/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file (relative to working
	// directory).
	ConfFile = "./config.toml"

	// LogLevel defines the general log level - can be overwritten by cmd
	// line options or config file.
	LogLevel = 5

	// TestLogLevel defines the test log level.
	TestLogLevel = 5

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

type logConfiguration struct {
	LogLvl     int
	TestLogLvl int
}

type conf struct {
	Log  logConfiguration
	Game gameConfiguration
}

// Setup reads the configuration file and sets settings from it (or
// defaults) for every aspect of the application: logging and the game
// rules a move-generation core enforces.
func Setup() {
	if initialized {
		return
	}

	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}

	setupLogLvl()
	setupGame()
	initialized = true
}

func setupLogLvl() {
	if Settings.Log.LogLvl != 0 {
		LogLevel = Settings.Log.LogLvl
	}
	if Settings.Log.TestLogLvl != 0 {
		TestLogLevel = Settings.Log.TestLogLvl
	}
}

// LogLevels maps the string log-level names a CLI flag accepts to the
// numerical levels logging.GetLog()/GetTestLog() expect, matching
// op/go-logging's own Level ordering.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

// String prints out the current configuration settings and values, using
// reflection to read fields without hand-maintaining a field list here.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Game Config:\n")
	s := reflect.ValueOf(&settings.Game).Elem()
	typeOfT := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-28s %-8s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	return c.String()
}
