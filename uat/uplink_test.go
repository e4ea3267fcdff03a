package uat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeUplinkFrame builds a 552-byte uplink frame (6 RS-encoded,
// interleaved 92-byte blocks) from a 432-byte payload, the inverse of
// decodeUplink's deinterleave/RS-correct steps.
func encodeUplinkFrame(payload [uplinkPayloadBytes]byte) []byte {
	dataLen := int(rsUplink.nn) - int(rsUplink.nroots)

	var blocks [uplinkBlockCount][]byte
	for b := 0; b < uplinkBlockCount; b++ {
		full := make([]byte, dataLen)
		copy(full[rsPadUplink:], payload[b*uplinkBlockPayloadBytes:(b+1)*uplinkBlockPayloadBytes])
		parity := make([]byte, rsUplink.nroots)
		rsUplink.encode(full, parity)
		block := append(append([]byte(nil), full[rsPadUplink:]...), parity...)
		blocks[b] = block
	}

	out := make([]byte, uplinkFrameBytes)
	for b := 0; b < uplinkBlockCount; b++ {
		for j := 0; j < uplinkBlockBytes; j++ {
			out[j*uplinkBlockCount+b] = blocks[b][j]
		}
	}
	return out
}

func TestDecodeUplinkRoundTripClean(t *testing.T) {
	var payload [uplinkPayloadBytes]byte
	for i := range payload {
		payload[i] = byte(i * 3)
	}

	frameBytes := encodeUplinkFrame(payload)
	require.Equal(t, uplinkFrameBytes, len(frameBytes))

	bits := bytesToBits(frameBytes)
	samples := modulate(bits)

	bs := &bitSlicer{table: NewPhaseTable(), center: 0}
	r := decodeUplink(bs, samples, 0)
	require.True(t, r.ok)
	assert.Equal(t, payload[:], r.payload)
	assert.Equal(t, 0, r.rsErrors)
}

func TestDecodeUplinkRoundTripWithCorrectableErrors(t *testing.T) {
	var payload [uplinkPayloadBytes]byte
	for i := range payload {
		payload[i] = byte(255 - i)
	}

	frameBytes := encodeUplinkFrame(payload)
	// Corrupt one byte in each of the first two blocks' transmitted
	// symbols (well within the 10-correction-per-block budget checked
	// by decodeUplink).
	frameBytes[0*uplinkBlockCount+0] ^= 0xFF
	frameBytes[5*uplinkBlockCount+1] ^= 0x01

	bits := bytesToBits(frameBytes)
	samples := modulate(bits)

	bs := &bitSlicer{table: NewPhaseTable(), center: 0}
	r := decodeUplink(bs, samples, 0)
	require.True(t, r.ok)
	assert.Equal(t, payload[:], r.payload)
	assert.Equal(t, 2, r.rsErrors)
}

func TestDecodeUplinkShortBufferFails(t *testing.T) {
	samples := make([]byte, 100)
	bs := &bitSlicer{table: NewPhaseTable(), center: 0}
	r := decodeUplink(bs, samples, 0)
	assert.False(t, r.ok)
}
