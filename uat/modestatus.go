package uat

import "strings"

// base40Alphabet is the UAT callsign/squawk base-40 alphabet, grounded
// byte-exact on uat_decode.c's literal
// "0123456789ABCDEFGHIJKLMNOPQRTSUVWXYZ  ..". Note the T-S transposition
// at positions 28 and 29 -- preserved literally per §4.7/§9.
const base40Alphabet = "0123456789ABCDEFGHIJKLMNOPQRTSUVWXYZ  .."

// HeadingType distinguishes magnetic from true heading in the Mode
// Status target-heading-type field.
type HeadingType int

const (
	HeadingMagnetic HeadingType = iota
	HeadingTrue
)

// ModeStatus is the decoded MS field group, grounded byte-exact on
// uat_decode.c's uat_decode_ms.
type ModeStatus struct {
	EmitterCategory int
	Callsign        string
	CallsignIsID    bool // true = flight callsign, false = squawk/other

	EmergencyStatus int
	UATVersion      int
	SIL             int
	TransmitMSO     int
	NACp            int
	NACv            int
	NICBaro         int

	HasCDTI      bool
	HasACAS      bool
	ACASRAActive bool
	IdentActive  bool
	ATCServices  bool
	HeadingType  HeadingType
}

func decodeModeStatus(frame []byte) ModeStatus {
	var ms ModeStatus

	v := uint16(frame[17])<<8 | uint16(frame[18])
	ms.EmitterCategory = int(v/1600) % 40
	c0 := base40Alphabet[(v/40)%40]
	c1 := base40Alphabet[v%40]

	v = uint16(frame[19])<<8 | uint16(frame[20])
	c2 := base40Alphabet[(v/1600)%40]
	c3 := base40Alphabet[(v/40)%40]
	c4 := base40Alphabet[v%40]

	v = uint16(frame[21])<<8 | uint16(frame[22])
	c5 := base40Alphabet[(v/1600)%40]
	c6 := base40Alphabet[(v/40)%40]
	c7 := base40Alphabet[v%40]

	callsign := string([]byte{c0, c1, c2, c3, c4, c5, c6, c7})
	ms.Callsign = strings.TrimRight(callsign, " ")

	ms.EmergencyStatus = int(frame[23]>>5) & 7
	ms.UATVersion = int(frame[23]>>2) & 7
	ms.SIL = int(frame[23] & 3)
	ms.TransmitMSO = int(frame[24]>>2) & 0x3f
	ms.NACp = int(frame[25]>>4) & 15
	ms.NACv = int(frame[25]>>1) & 7
	ms.NICBaro = int(frame[25] & 1)
	ms.HasCDTI = frame[26]&0x80 != 0
	ms.HasACAS = frame[26]&0x40 != 0
	ms.ACASRAActive = frame[26]&0x20 != 0
	ms.IdentActive = frame[26]&0x10 != 0
	ms.ATCServices = frame[26]&0x08 != 0
	if frame[26]&0x04 != 0 {
		ms.HeadingType = HeadingMagnetic
	} else {
		ms.HeadingType = HeadingTrue
	}
	ms.CallsignIsID = frame[26]&0x02 != 0

	return ms
}
