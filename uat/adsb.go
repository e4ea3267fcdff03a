package uat

// ADS-B (downlink) frame decoder, grounded on dump978.c's
// decode_adsb_frame() for demod order and dump978.c lacking any RS
// step at all (explicit "XXX here we should do error correction"
// comment) -- RS correction here is new versus the original C program,
// grounded instead on the teacher's FX.25 RS codec per §4.5/§4.8.
type adsbResult struct {
	ok       bool
	payload  []byte
	rsErrors int
	consumed int // frame-data bytes consumed (frame_bits*4), not including the sync word
}

// decodeADSB implements §4.5: demodulate 48 bytes speculatively (Long),
// keep the leading 30 (Basic), try Long RS then Basic RS.
func decodeADSB(bs *bitSlicer, samples []byte, sampleStart int) adsbResult {
	long, ok := bs.sliceBits(samples, sampleStart, longFrameBits)
	if !ok {
		return adsbResult{}
	}
	basic := make([]byte, basicFrameBytes)
	copy(basic, long[:basicFrameBytes])

	if n := rsShortenedDecode(rsLong, rsPadLong, long); n >= 0 && n <= 7 {
		if long[0]>>3 != 0 {
			return adsbResult{
				ok:       true,
				payload:  append([]byte(nil), long[:longPayloadBytes]...),
				rsErrors: n,
				consumed: longFrameBits * 4,
			}
		}
	}

	if n := rsShortenedDecode(rsBasic, rsPadBasic, basic); n >= 0 && n <= 6 {
		if basic[0]>>3 == 0 {
			return adsbResult{
				ok:       true,
				payload:  append([]byte(nil), basic[:basicPayloadBytes]...),
				rsErrors: n,
				consumed: basicFrameBits * 4,
			}
		}
	}

	return adsbResult{}
}
