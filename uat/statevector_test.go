package uat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setLatLon packs a 23-bit raw latitude and 24-bit raw longitude into
// frame bytes 4-9, the inverse of decodeStateVector's extraction.
func setLatLon(frame []byte, rawLat, rawLon uint32) {
	frame[4] = byte(rawLat >> 15)
	frame[5] = byte(rawLat >> 7)
	frame[6] = byte((rawLat&0x7f)<<1) | byte((rawLon>>23)&1)
	frame[7] = byte(rawLon >> 15)
	frame[8] = byte(rawLon >> 7)
	frame[9] = byte((rawLon & 0x7f) << 1)
}

func newSVFrame() []byte {
	return make([]byte, 34)
}

func TestStateVectorNICZeroAndNoPositionIsUnavailable(t *testing.T) {
	frame := newSVFrame()
	sv := decodeStateVector(frame)
	assert.Equal(t, 0, sv.NIC)
	assert.False(t, sv.PositionValid)
}

func TestStateVectorNICZeroButNonzeroPositionIsValid(t *testing.T) {
	frame := newSVFrame()
	setLatLon(frame, 1, 0)
	sv := decodeStateVector(frame)
	assert.Equal(t, 0, sv.NIC)
	assert.True(t, sv.PositionValid)
}

func TestStateVectorLatitudeWraparoundAbove90(t *testing.T) {
	frame := newSVFrame()
	frame[11] = 0x05 // NIC=5
	// rawLat = 0x400001 -> raw*360/2^24 just over 90 degrees, wraps to
	// negative per decodeStateVector's ">90 -> -180" rule.
	setLatLon(frame, 0x400001, 0)
	sv := decodeStateVector(frame)
	expected := float64(0x400001)*360.0/16777216.0 - 180.0
	assert.InDelta(t, expected, sv.Latitude, 1e-9)
	assert.Less(t, sv.Latitude, 0.0)
}

func TestStateVectorLatitudeAtBoundaryNotWrapped(t *testing.T) {
	frame := newSVFrame()
	frame[11] = 0x05
	// rawLat = 0x400000 -> exactly 90.0 degrees, not wrapped (>90 check
	// is strict).
	setLatLon(frame, 0x400000, 0)
	sv := decodeStateVector(frame)
	assert.InDelta(t, 90.0, sv.Latitude, 1e-9)
}

func TestStateVectorLongitudeWraparoundAbove180(t *testing.T) {
	frame := newSVFrame()
	frame[11] = 0x05
	setLatLon(frame, 0, 0x800001)
	sv := decodeStateVector(frame)
	expected := float64(0x800001)*360.0/16777216.0 - 360.0
	assert.InDelta(t, expected, sv.Longitude, 1e-9)
	assert.Less(t, sv.Longitude, 0.0)
}

func TestStateVectorAltitudeRawZeroIsInvalid(t *testing.T) {
	frame := newSVFrame()
	sv := decodeStateVector(frame)
	assert.False(t, sv.AltitudeValid)
}

func TestStateVectorAltitudeRawOneIsMinimum(t *testing.T) {
	frame := newSVFrame()
	// rawAlt = frame[10]<<4 | frame[11]>>4 = 1
	frame[10] = 0
	frame[11] = 0x10
	sv := decodeStateVector(frame)
	require.True(t, sv.AltitudeValid)
	assert.Equal(t, (1-1)*25-1000, sv.Altitude)
	assert.Equal(t, AltitudeBarometric, sv.AltitudeType)
}

func TestStateVectorAltitudeRaw7FFAndGeometric(t *testing.T) {
	frame := newSVFrame()
	// rawAlt = frame[10]<<4 | frame[11]>>4 = 0x7FF (the field is 12 bits wide).
	frame[10] = 0x7F
	frame[11] = 0xF0
	frame[9] = 0x01 // geometric altitude source bit
	sv := decodeStateVector(frame)
	require.True(t, sv.AltitudeValid)
	assert.Equal(t, (0x7FF-1)*25-1000, sv.Altitude)
	assert.Equal(t, AltitudeGeometric, sv.AltitudeType)
}

func TestStateVectorAirborneSupersonicScalesVelocityBy4(t *testing.T) {
	frameSub := newSVFrame()
	frameSup := newSVFrame()

	// air/ground state bits at byte 12 top 2 bits: 0=airborne subsonic, 1=supersonic.
	frameSub[12] = 0x00
	frameSup[12] = 0x40

	// Identical raw NS/EW velocity fields in both frames.
	rawNS := 10 // positive small value
	rawEW := 20
	for _, f := range [][]byte{frameSub, frameSup} {
		f[12] = f[12]&0xc0 | byte((rawNS>>6)&0x1f)
		f[13] = byte((rawNS<<2)&0xfc) | byte((rawEW>>9)&0x03)
		f[14] = byte((rawEW >> 1) & 0xff)
		f[15] = byte((rawEW << 7) & 0x80)
	}

	svSub := decodeStateVector(frameSub)
	svSup := decodeStateVector(frameSup)

	require.True(t, svSub.NSVelValid)
	require.True(t, svSup.NSVelValid)
	assert.Equal(t, svSub.NSVel*4, svSup.NSVel)
	assert.Equal(t, svSub.EWVel*4, svSup.EWVel)
}

func TestStateVectorGroundStateDecodesLengthWidth(t *testing.T) {
	frame := newSVFrame()
	frame[12] = 0x80 // air/ground state = 2 (Ground)
	frame[15] = 0x38 | 0x04 | 0x02 // 0x38: length/width index bits (length 85m, width index 7), 0x04: position offset bit, 0x02: not decoded
	sv := decodeStateVector(frame)
	assert.Equal(t, Ground, sv.AirGround)
	assert.True(t, sv.LengthWidthValid)
	assert.True(t, sv.PositionOffset)
}

func TestStateVectorReservedAirGroundStateDecodesNothingExtra(t *testing.T) {
	frame := newSVFrame()
	frame[12] = 0xc0 // air/ground state = 3 (reserved)
	sv := decodeStateVector(frame)
	assert.Equal(t, AirGroundReserved, sv.AirGround)
	assert.False(t, sv.NSVelValid)
	assert.False(t, sv.LengthWidthValid)
}

func TestStateVectorUTCCoupledVsTISBSiteID(t *testing.T) {
	frame := newSVFrame()
	frame[0] = 0x00 // low 3 bits = 0 -> not TIS-B dispatch, UTC coupling path
	frame[16] = 0x08
	sv := decodeStateVector(frame)
	assert.True(t, sv.UTCCoupled)
	assert.Equal(t, 0, sv.TISBSiteID)

	frame2 := newSVFrame()
	frame2[0] = 0x02 // low 3 bits = 2 -> TIS-B site ID path
	frame2[16] = 0x05
	sv2 := decodeStateVector(frame2)
	assert.False(t, sv2.UTCCoupled)
	assert.Equal(t, 5, sv2.TISBSiteID)
}
