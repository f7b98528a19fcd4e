package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCandyMachineState(t *testing.T) {
	state := CandyMachineState{Price: 1_500_000_000, ItemsAvailable: 10, ItemsRedeemed: 4}

	assert.False(t, state.SoldOut())
	assert.Equal(t, uint64(6), state.ItemsRemaining())
	assert.Equal(t, "1.5", state.PriceSOL().String())

	state.ItemsRedeemed = 10
	assert.True(t, state.SoldOut())
	assert.Equal(t, uint64(0), state.ItemsRemaining())

	state.ItemsRedeemed = 11
	assert.True(t, state.SoldOut())
	assert.Equal(t, uint64(0), state.ItemsRemaining())
}

func TestCandyMachineStateIsLive(t *testing.T) {
	now := time.Date(2021, 10, 1, 22, 1, 0, 0, time.UTC)

	assert.True(t, CandyMachineState{}.IsLive(now))

	goLive := now.Unix()
	state := CandyMachineState{GoLiveDate: &goLive}
	assert.True(t, state.IsLive(now))
	assert.False(t, state.IsLive(now.Add(-time.Second)))
}
