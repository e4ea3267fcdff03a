package uat

// DecodedMessage is the fully structured form of an ADS-B payload,
// assembled per the header-type dispatch table in §4.5. Only the
// fields applicable to the frame's mdb_type are populated; the others
// remain nil.
type DecodedMessage struct {
	Header Header

	SV    *StateVector
	MS    *ModeStatus
	AuxSV *AuxStateVector
}

// hasSV/hasMS/hasAuxSV report which field groups a given mdb_type
// carries, grounded on the table in spec §4.5 (itself matching
// dump978.c's display_adsb_long_frame / display_adsb_short_frame
// dispatch on header.mdb_type).
func hasSV(mdbType byte) bool {
	return mdbType <= 10
}

func hasMS(mdbType byte) bool {
	return mdbType == 1 || mdbType == 3
}

func hasAuxSV(mdbType byte) bool {
	switch mdbType {
	case 1, 2, 5, 6:
		return true
	default:
		return false
	}
}

// DecodeMessage decodes an ADS-B payload (18 or 34 bytes) into a
// DecodedMessage, dispatching field-group decode by header mdb_type.
// Payloads shorter than the header's always-present fields are not
// produced by the frame decoders; DecodeMessage assumes a
// correctly-sized payload as returned by decodeADSB.
func DecodeMessage(payload []byte) DecodedMessage {
	var msg DecodedMessage
	msg.Header = decodeHeader(payload)

	if hasSV(msg.Header.MDBType) && len(payload) >= 17 {
		sv := decodeStateVector(payload)
		msg.SV = &sv
	}
	if hasMS(msg.Header.MDBType) && len(payload) >= 27 {
		ms := decodeModeStatus(payload)
		msg.MS = &ms
	}
	if hasAuxSV(msg.Header.MDBType) && len(payload) >= 31 {
		aux := decodeAuxStateVector(payload)
		msg.AuxSV = &aux
	}

	return msg
}
