package uat

// The two 36-bit UAT sync words, grounded on original_source/dump978.c's
// SYNC_ADSB / SYNC_UPLINK constants. Each is matched at one of two
// sub-bit sample offsets (sync0, sync1) by the scanner in scanner.go.
const (
	syncWordADSB   uint64 = 0xEACDDA4E2
	syncWordUplink uint64 = 0x153225B1D
	syncWordBits          = 36
	syncWordMask   uint64 = (1 << syncWordBits) - 1

	// syncCheckBits is the width of the fast prefilter applied before the
	// full 36-bit verification, following dump978.c's SYNC_CHECK_US
	// reduced-width correlation.
	syncCheckBits = 18
	syncCheckMask uint64 = (1 << syncCheckBits) - 1
)

var (
	syncCheckADSB   = syncWordADSB & syncCheckMask
	syncCheckUplink = syncWordUplink & syncCheckMask
)

// frameKind identifies which framing state machine a matched sync word
// routes to.
type frameKind int

const (
	frameKindADSB frameKind = iota
	frameKindUplink
)
