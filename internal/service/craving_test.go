package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Oussamaberchi/Quickkt/internal"
)

func TestValidateCravingRequest(t *testing.T) {
	assert.NoError(t, ValidateCravingRequest(&CravingRequest{Intensity: 5, Trigger: "stress"}))
	assert.NoError(t, ValidateCravingRequest(&CravingRequest{Intensity: 1})) // trigger optional
	assert.Error(t, ValidateCravingRequest(&CravingRequest{Intensity: 0}))
	assert.Error(t, ValidateCravingRequest(&CravingRequest{Intensity: 11}))
	assert.Error(t, ValidateCravingRequest(&CravingRequest{Intensity: 5, Trigger: "banana"}))
}

func TestLogCravingAppendsInOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, intensity := range []int{2, 5, 8} {
		_, err := LogCraving(ctx, store, &CravingRequest{Intensity: intensity, Trigger: "coffee"})
		assert.NoError(t, err)
	}

	logs, err := store.ListCravings(ctx)
	assert.NoError(t, err)
	assert.Len(t, logs, 3)
	assert.Equal(t, 2, logs[0].Intensity)
	assert.Equal(t, 8, logs[2].Intensity)
	assert.Equal(t, internal.TriggerCoffee, logs[0].Trigger)
	// logged retroactively at "now", so timestamps are non-decreasing
	assert.False(t, logs[1].Timestamp.Before(logs[0].Timestamp))
}
