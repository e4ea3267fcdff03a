package uat

import "io"

// Pipeline ties together the sample intake, sync scanner, bit slicer,
// and frame decoders into the single-threaded, sequential receiver
// loop described in §5: one blocking read as the only suspension
// point, no internal parallelism, no shared state beyond the sample
// buffer and sync registers owned by this instance.
type Pipeline struct {
	table   *PhaseTable
	scanner *scanner
	sink    Sink
}

// NewPipeline builds a receiver around the given sink. Each Pipeline
// owns its own phase table, sample buffer, and sync registers; running
// multiple receivers concurrently requires independent instances (the
// phase table itself is safely shared if callers want to construct it
// once and reuse it -- see NewPipelineWithTable).
func NewPipeline(sink Sink) *Pipeline {
	return NewPipelineWithTable(NewPhaseTable(), sink)
}

// NewPipelineWithTable builds a receiver using a pre-built, shared
// phase table -- useful when running many pipeline instances, since
// the table is immutable after construction (§5).
func NewPipelineWithTable(table *PhaseTable, sink Sink) *Pipeline {
	return &Pipeline{
		table:   table,
		scanner: newScanner(table),
		sink:    sink,
	}
}

// Run reads samples from r until EOF, emitting every decoded frame to
// the sink in sample order. Returns nil on clean EOF, or the
// underlying read error otherwise (§7's fatal error kind).
//
// All internal bookkeeping is in raw input bytes (two per complex
// sample, I then Q); RawFrame.SampleIndex is reported in complex
// samples (byte offset / 2), matching §6's `seconds = sample_index /
// 2083334.0` and dump978.c's own `(offset+i)/2/2083334.0`.
func (p *Pipeline) Run(r io.Reader) error {
	src := newSampleSource(r)
	var byteOffset uint64
	bs := &bitSlicer{table: p.table}

	for {
		if err := src.fill(); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		window := src.window()
		consumedFromWindow := 0

		for {
			res := p.scanner.scan(window)
			if !res.found {
				// Drop what the scanner has examined, keeping enough of
				// the tail for a sync word that ends past the scan limit
				// to be matched once more data arrives.
				if keep := minTail() + syncWordBits*4; len(window) > keep {
					consumedFromWindow += (len(window) - keep) &^ 3
				}
				break
			}

			bs.center = res.match.center
			// Frame data begins right after the matched sync word: offset
			// i+2 for a sync0 match, i+4 for a sync1 match, mirroring
			// dump978.c's decode_adsb_frame(input+i+2) / (input+i+4).
			frameStart := res.index + 2 + 2*res.match.offset
			syncStart := frameStart - syncWordBits*4
			sampleIndex := (byteOffset + uint64(consumedFromWindow) + uint64(syncStart)) / 2

			consumed := p.tryDecode(bs, window, frameStart, res.match.kind, sampleIndex)
			if consumed == 0 {
				// no usable frame here; advance past this candidate by one
				// bit period and keep scanning the same window.
				advance := res.index + 4
				window = window[advance:]
				consumedFromWindow += advance
				continue
			}
			advance := frameStart + consumed
			window = window[advance:]
			consumedFromWindow += advance
		}

		src.consume(consumedFromWindow)
		byteOffset += uint64(consumedFromWindow)
	}
}

// tryDecode attempts ADS-B or uplink decoding at the matched sync
// point and emits on success, returning the number of frame-data bytes
// consumed starting at frameStart (0 if nothing decoded here).
func (p *Pipeline) tryDecode(bs *bitSlicer, window []byte, frameStart int, kind frameKind, sampleIndex uint64) int {
	switch kind {
	case frameKindADSB:
		r := decodeADSB(bs, window, frameStart)
		if !r.ok {
			return 0
		}
		p.sink.Frame(RawFrame{
			Direction:   DirectionDownlink,
			Payload:     r.payload,
			RSErrors:    r.rsErrors,
			SampleIndex: sampleIndex,
		})
		return r.consumed
	case frameKindUplink:
		r := decodeUplink(bs, window, frameStart)
		if !r.ok {
			return 0
		}
		p.sink.Frame(RawFrame{
			Direction:   DirectionUplink,
			Payload:     r.payload,
			RSErrors:    r.rsErrors,
			SampleIndex: sampleIndex,
		})
		return r.consumed
	}
	return 0
}
