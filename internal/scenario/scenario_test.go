/*
 * movecore - infinite board chess move generation and legality core
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 movecore contributors
 */

package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcreteScenarios(t *testing.T) {
	for _, c := range All() {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			assert.NoError(t, c.Check())
		})
	}
}

func TestRunAllCollectsResults(t *testing.T) {
	results := RunAll(All())
	assert.Len(t, results, len(All()))
	for _, r := range results {
		assert.Truef(t, r.Passed(), "%s: %v", r.Name, r.Err)
	}
}
