package syncing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeWindow_LastTwoDays(t *testing.T) {
	// Meio-dia de 2025-11-02 no fuso -03:00
	now := time.Date(2025, 11, 2, 15, 0, 0, 0, time.UTC)

	window, err := ComputeWindow(2, -3, now)
	require.NoError(t, err)

	loc := time.FixedZone("fixed", -3*3600)
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, loc).Unix(), window.Start.Unix())
	assert.Equal(t, time.Date(2025, 11, 2, 23, 59, 59, 999000000, loc).Unix(), window.End.Unix())
	assert.Equal(t, 2, window.Days)
}

func TestComputeWindow_LocalDayDiffersFromUTC(t *testing.T) {
	// 01:00 UTC de 2025-11-02 ainda é 22:00 de 2025-11-01 no fuso -03:00;
	// a janela tem que seguir o dia civil da loja, não o dia UTC.
	now := time.Date(2025, 11, 2, 1, 0, 0, 0, time.UTC)

	window, err := ComputeWindow(1, -3, now)
	require.NoError(t, err)

	loc := time.FixedZone("fixed", -3*3600)
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, loc).Unix(), window.Start.Unix())
	assert.Equal(t, time.Date(2025, 11, 1, 23, 59, 59, 999000000, loc).Unix(), window.End.Unix())
}

func TestComputeWindow_CrossesMonthBoundary(t *testing.T) {
	now := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)

	window, err := ComputeWindow(5, 0, now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 2, 26, 0, 0, 0, 0, time.UTC).Unix(), window.Start.Unix())

	days := window.EachDay()
	require.Len(t, days, 5)
	assert.Equal(t, time.Date(2025, 2, 26, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), days[4])
}

func TestComputeWindow_InvalidDays(t *testing.T) {
	for _, days := range []int{0, -1} {
		_, err := ComputeWindow(days, -3, time.Now())
		require.Error(t, err)

		var syncErr *SyncError
		require.True(t, errors.As(err, &syncErr))
		assert.Equal(t, ErrorKindWindow, syncErr.Kind)
		assert.ErrorIs(t, err, ErrInvalidWindowDays)
	}
}
