package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	valid := []string{"00:00", "09:05", "19:30", "23:59", "24:00"}
	for _, s := range valid {
		ts, err := NewTimeStringFromString(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, ts.String())
	}

	invalid := []string{"", "10", "10:0:0:0", "25:00", "10:60", "24:01", "ab:cd"}
	for _, s := range invalid {
		_, err := NewTimeStringFromString(s)
		assert.Error(t, err, s)
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2024, 1, 20, 9, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestMinutesFromMidnight(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").MinutesFromMidnight())
	assert.Equal(t, 600, TimeString("10:00").MinutesFromMidnight())
	assert.Equal(t, 1440, TimeString("24:00").MinutesFromMidnight())

	assert.Panics(t, func() {
		TimeString("garbage").MinutesFromMidnight()
	})
}

func TestAddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:45"), got)

	got, err = TimeString("23:15").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), got)

	_, err = TimeString("23:30").AddMinutes(45)
	assert.Error(t, err)
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan(time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("10:00"), ts)

	// lib/pq может отдавать TIME как текст с секундами
	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan([]byte("19:00")))
	assert.Equal(t, TimeString("19:00"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestValue(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	_, err = TimeString("garbage").Value()
	assert.Error(t, err)
}
