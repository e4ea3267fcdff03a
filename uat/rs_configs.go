package uat

// The three shortened RS(255,*) configurations used by the frame
// decoders, parameterized per spec §4.5/§4.6/§4.8: field polynomial
// 0x187 (x^8+x^7+x^2+x+1), first consecutive root 120, primitive
// element 1 (root spacing -- the field's own primitive element, 2, is
// implicit in the 0x187 table construction, same as the teacher's
// fx25Tab entries which all use prim=1 with a different field
// polynomial).
const rsFieldPoly = 0x187
const rsFCR = 120
const rsPrim = 1

var (
	rsLong   = newRSCodec(rsFieldPoly, rsFCR, rsPrim, 14) // Long ADS-B, pad 207
	rsBasic  = newRSCodec(rsFieldPoly, rsFCR, rsPrim, 12) // Basic ADS-B, pad 225
	rsUplink = newRSCodec(rsFieldPoly, rsFCR, rsPrim, 20) // Uplink block, pad 163
)

const (
	rsPadLong   = 207
	rsPadBasic  = 225
	rsPadUplink = 163
)

// rsShortenedDecode decodes a shortened RS block: data holds the
// transmitted symbols only (no pad); a full 255-symbol block is formed
// by prepending `pad` zero symbols, decoded in place, and the corrected
// trailing len(data) symbols are copied back into data. Returns the
// number of symbol corrections, or -1 if uncorrectable.
func rsShortenedDecode(rs *rsCodec, pad int, data []byte) int {
	block := make([]byte, int(rs.nn))
	copy(block[pad:], data)
	n := rs.decode(block)
	if n < 0 {
		return -1
	}
	copy(data, block[pad:])
	return n
}
