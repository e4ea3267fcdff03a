package uat

import "math"

// PhaseTableSize is the number of (I, Q) byte combinations covered by the
// phase table: one entry per possible sample pair.
const PhaseTableSize = 256 * 256

// PhaseTable is a precomputed lookup from an (I, Q) sample byte pair to an
// unsigned 16-bit phase angle covering [0, 2*pi). At 2 Msps the demodulator
// inner loop cannot afford a transcendental call per sample, so the whole
// table -- 65536 bytes*2 -- is built once and indexed thereafter.
//
// Phase arithmetic elsewhere in this package relies on 16-bit wraparound:
// subtracting two table entries and reinterpreting the result as int16
// gives the correct signed angular difference on the shorter arc. See
// PhaseDelta.
type PhaseTable [PhaseTableSize]uint16

// NewPhaseTable builds the table once. Construction: for every (i, q),
// theta = atan2(q-127.5, i-127.5) + pi, scaled to round(32768*theta/pi)
// and clamped to 0..65535. The additive pi shift maps atan2's [-pi, pi]
// output to [0, 2*pi) so 16-bit wraparound models angular continuity
// correctly.
func NewPhaseTable() *PhaseTable {
	var t PhaseTable
	for i := 0; i < 256; i++ {
		for q := 0; q < 256; q++ {
			di := float64(i) - 127.5
			dq := float64(q) - 127.5
			theta := math.Atan2(dq, di) + math.Pi
			v := math.Round(32768 * theta / math.Pi)
			if v < 0 {
				v = 0
			} else if v > 65535 {
				v = 65535
			}
			t[i*256+q] = uint16(v)
		}
	}
	return &t
}

// Lookup returns the phase for one I/Q sample pair.
func (t *PhaseTable) Lookup(i, q uint8) uint16 {
	return t[int(i)*256+int(q)]
}

// PhaseDelta computes the signed angular difference b-a, relying on
// unsigned 16-bit subtraction wrapping and being reinterpreted as a
// signed delta. This is the only place phase subtraction should happen;
// callers must never compare raw uint16 phases with <, only deltas.
func PhaseDelta(a, b uint16) int16 {
	return int16(b - a)
}
