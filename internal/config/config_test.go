/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package config

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"testing"
)

// make tests run in the project's root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestInit(t *testing.T) {
	Setup()
	fmt.Printf("LogLvl: %v\n", Settings.Log.LogLvl)
	fmt.Printf("LogLevel set: %v\n", LogLevel)
	fmt.Printf("MoveRuleLimit: %v\n", Settings.Game.MoveRuleLimit)
	fmt.Printf("PieceCountToDisableCheckmate: %v\n", Settings.Game.PieceCountToDisableCheckmate)
}

func Test(t *testing.T) {
	Setup()
	fmt.Println(Settings.String())
}
