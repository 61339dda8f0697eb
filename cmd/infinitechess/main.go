/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

// Command infinitechess is the move-generation core's CLI entry point:
// wires a config file and log level, runs the spec.md section 8 concrete
// scenarios as a fixture suite, and offers a perft-style exhaustive
// legal-move counter. Grounded on FrankyGo's cmd/FrankyGo/main.go, which
// does the same flag-parsing/config/log-level wiring around its own
// -testsuite and -perft flags; here the board is the columnar,
// arbitrary-coordinate board.Board instead of a fixed 8x8 bitboard
// Position, so perft counts legal destinations through legalmoves.Filtered
// rather than walking a precomputed attack table.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/infinite-chess/movecore/internal/boardio"
	"github.com/infinite-chess/movecore/internal/config"
	"github.com/infinite-chess/movecore/internal/logging"
	"github.com/infinite-chess/movecore/internal/scenario"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	runScenarios := flag.Bool("scenarios", false, "run the spec.md section 8 concrete scenarios and exit")
	perftDepth := flag.Int("perft", 0, "count legal destinations to the given ply depth from the standard starting position")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile (see github.com/pkg/profile) while running -perft")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	logging.GetLog()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if *runScenarios {
		runScenarioSuite()
		return
	}

	if *perftDepth > 0 {
		b, err := boardio.Load(boardio.StandardChess())
		if err != nil {
			fmt.Fprintln(os.Stderr, "infinitechess: failed to load starting position:", err)
			os.Exit(1)
		}
		result := Perft(b, *perftDepth)
		fmt.Println(result.String())
		return
	}

	flag.Usage()
}

func runScenarioSuite() {
	results := scenario.RunAll(scenario.All())
	failed := 0
	for _, r := range results {
		status := "ok"
		if !r.Passed() {
			failed++
			status = fmt.Sprintf("FAIL: %v", r.Err)
		}
		fmt.Printf("%-45s %s\n", r.Name, status)
	}
	if failed > 0 {
		fmt.Printf("%d/%d scenarios failed\n", failed, len(results))
		os.Exit(1)
	}
	fmt.Printf("%d scenarios passed\n", len(results))
}
