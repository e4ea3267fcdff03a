package uat

// AuxStateVector is the decoded AuxSV field group, grounded on
// uat_decode.c's uat_decode_auxsv. Note the secondary altitude type
// polarity is inverted relative to StateVector.AltitudeType in the
// upstream source (frame[9]&1 selects barometric here, geometric
// there) -- preserved as read; see DESIGN.md's Open Question entry.
type AuxStateVector struct {
	SecondaryAltitudeValid bool
	SecondaryAltitude      int
	SecondaryAltitudeType  AltitudeType
}

func decodeAuxStateVector(frame []byte) AuxStateVector {
	var aux AuxStateVector

	rawAlt := int(frame[29])<<4 | int(frame[30]&0xf0)>>4
	if rawAlt != 0 {
		aux.SecondaryAltitudeValid = true
		aux.SecondaryAltitude = (rawAlt-1)*25 - 1000
		if frame[9]&1 != 0 {
			aux.SecondaryAltitudeType = AltitudeBarometric
		} else {
			aux.SecondaryAltitudeType = AltitudeGeometric
		}
	}

	return aux
}
