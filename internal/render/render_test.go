package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kb9hzx/uat978/internal/config"
	"github.com/kb9hzx/uat978/uat"
)

func TestRangeBearingZeroAtStation(t *testing.T) {
	station := config.Station{Latitude: 40, Longitude: -105}
	rng, _ := RangeBearing(station, 40, -105)
	assert.InDelta(t, 0, rng, 1e-6)
}

func TestRangeBearingNorth(t *testing.T) {
	station := config.Station{Latitude: 40, Longitude: -105}
	_, bearing := RangeBearing(station, 41, -105)
	assert.InDelta(t, 0, bearing, 1.0)
}

func TestUTMRoundTripsZone(t *testing.T) {
	// Boulder, CO is in UTM zone 13.
	s, err := UTM(40.0150, -105.2705)
	require.NoError(t, err)
	assert.Contains(t, s, "13")
}

func TestClockFormatsWallTime(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s, err := Clock("%Y-%m-%d %H:%M:%S", start, 61.5)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01 00:01:01", s)
}

func TestFrameRendersHeaderAndSV(t *testing.T) {
	raw := uat.RawFrame{Direction: uat.DirectionDownlink, Payload: make([]byte, 18), SampleIndex: 2083334}
	var payload [18]byte
	payload[0] = 0 // mdb type 0
	msg := uat.DecodeMessage(payload[:])

	out := Frame(raw, msg, Options{})
	assert.True(t, strings.Contains(out, "t=1.000000s"))
	assert.True(t, strings.Contains(out, "hdr:"))
	assert.True(t, strings.Contains(out, "sv:"))
}
