package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/config"
)

// TestRender_UnseededCachedUnderClockSeed pins the clock so two unseeded
// requests resolve to the same seed and share a cache entry.
func TestRender_UnseededCachedUnderClockSeed(t *testing.T) {
	svc, err := New(config.Default())
	require.NoError(t, err)
	now := time.Unix(0, 123456789)
	svc.clock = func() time.Time { return now }

	req := Request{Width: 3, Height: 3}
	first, err := svc.Render(context.Background(), req, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, int64(123456789), first.Seed)

	second, err := svc.Render(context.Background(), req, FormatJSON)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.ID, second.ID)
}
