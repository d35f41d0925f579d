// Package lsp_test contains unit tests for the bird capabilities.
// They validate that the refactored design makes the unsupported state
// unrepresentable, while the legacy design fails at invocation time.
package lsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/solid/lsp"
)

// ------------------------------------------------------------------------
// 1. Refactored capabilities: substitution always holds.
// ------------------------------------------------------------------------

func TestMigrate_AllFlyersFly(t *testing.T) {
	flights := lsp.Migrate(lsp.Sparrow{}, lsp.Eagle{})
	require.Len(t, flights, 2)
	assert.Equal(t, 50.0, flights[0].AltitudeMeters)
	assert.Equal(t, 3000.0, flights[1].AltitudeMeters)
}

func TestMigrate_EmptyFlock(t *testing.T) {
	assert.Empty(t, lsp.Migrate())
}

func TestPenguin_LacksFlightCapability(t *testing.T) {
	// The capability is absent from the type itself: a Penguin is a Bird
	// and a Swimmer, but no Flyer — so no call path can ask it to fly.
	var bird lsp.Bird = lsp.Penguin{}
	_, isFlyer := bird.(lsp.Flyer)
	assert.False(t, isFlyer, "penguin must not satisfy the flight capability")

	_, isSwimmer := bird.(lsp.Swimmer)
	assert.True(t, isSwimmer)
	assert.Equal(t, 150.0, lsp.Penguin{}.Swim().DepthMeters)
}

// ------------------------------------------------------------------------
// 2. Legacy contract: the forced capability fails at run time.
// ------------------------------------------------------------------------

func TestLegacyPenguin_FlySignalsUnsupported(t *testing.T) {
	_, err := lsp.LegacyPenguin{}.Fly()
	assert.ErrorIs(t, err, lsp.ErrFlightNotSupported)
}

func TestLegacyMigrate_BreaksOnSubstitutedPenguin(t *testing.T) {
	// A flock of flying variants works...
	flights, err := lsp.LegacyMigrate(lsp.LegacySparrow{}, lsp.LegacySparrow{})
	require.NoError(t, err)
	assert.Len(t, flights, 2)

	// ...until a penguin is substituted in, and the same call path fails.
	_, err = lsp.LegacyMigrate(lsp.LegacySparrow{}, lsp.LegacyPenguin{})
	assert.ErrorIs(t, err, lsp.ErrFlightNotSupported)
}
