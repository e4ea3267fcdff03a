package uat

import "fmt"

// AddressQualifier identifies the kind of 24-bit address carried in a
// frame header, grounded on uat_decode.c's address_qualifier_names.
type AddressQualifier byte

const (
	AddrICAOADSB AddressQualifier = iota
	AddrReservedNational
	AddrICAOTISB
	AddrTISBTrackFile
	AddrVehicle
	AddrFixedBeacon
	AddrReserved6
	AddrReserved7
)

func (q AddressQualifier) String() string {
	names := [8]string{
		"ICAO address via ADS-B",
		"reserved (national use)",
		"ICAO address via TIS-B",
		"TIS-B track file address",
		"Vehicle address",
		"Fixed ADS-B Beacon Address",
		"reserved (6)",
		"reserved (7)",
	}
	if int(q) < len(names) {
		return names[q]
	}
	return "unknown"
}

// Header is the common MDB header present in every ADS-B payload,
// grounded on uat_decode.c's uat_decode_hdr / uat_decode.h's uat_hdr.
type Header struct {
	MDBType           byte
	AddressQualifier  AddressQualifier
	Address           uint32 // 24-bit
}

func decodeHeader(frame []byte) Header {
	return Header{
		MDBType:          frame[0] >> 3,
		AddressQualifier: AddressQualifier(frame[0] & 0x07),
		Address:          uint32(frame[1])<<16 | uint32(frame[2])<<8 | uint32(frame[3]),
	}
}

func (h Header) String() string {
	return fmt.Sprintf("HDR: MDB Type=%d Address=%06X (%s)", h.MDBType, h.Address, h.AddressQualifier)
}
