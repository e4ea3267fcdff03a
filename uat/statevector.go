package uat

import "math"

// AltitudeType distinguishes geometric from barometric altitude
// sources, used by both StateVector and AuxStateVector.
type AltitudeType int

const (
	AltitudeBarometric AltitudeType = iota
	AltitudeGeometric
)

// AirGroundState is the 2-bit state carried in byte 12 of the payload.
type AirGroundState int

const (
	AirborneSubsonic AirGroundState = iota
	AirborneSupersonic
	Ground
	AirGroundReserved
)

// TrackType records what kind of heading/track value StateVector.Track
// holds, matching dump978.c's track_type_t.
type TrackType int

const (
	TrackNone TrackType = iota
	TrackAirborne
	TrackGround
	TrackGroundMagHeading
	TrackGroundTrueHeading
)

// dimensionsWidths is the 4-bit length-category-to-width (meters)
// lookup table, grounded on uat_decode.c's dimensions_widths.
var dimensionsWidths = [16]float64{
	11.5, 23, 28.5, 34, 33, 38, 39.5, 45, 45, 52, 59.5, 67, 72.5, 80, 80, 90,
}

// StateVector is the decoded SV field group, grounded byte-exact on
// uat_decode.c's uat_decode_sv.
type StateVector struct {
	NIC int

	PositionValid      bool
	Latitude, Longitude float64

	AltitudeValid bool
	Altitude      int
	AltitudeType  AltitudeType

	AirGround AirGroundState

	NSVelValid bool
	NSVel      int
	EWVelValid bool
	EWVel      int

	TrackValid bool
	TrackType  TrackType
	Track      uint16

	SpeedValid bool
	Speed      int

	VertRateValid  bool
	VertRate       int
	VertRateSource AltitudeType

	LengthWidthValid bool
	Length, Width    float64
	PositionOffset   bool

	UTCCoupled  bool
	TISBSiteID  int
}

func decodeStateVector(frame []byte) StateVector {
	var sv StateVector

	sv.NIC = int(frame[11] & 0x0f)

	rawLat := uint32(frame[4])<<15 | uint32(frame[5])<<7 | uint32(frame[6])>>1
	rawLon := uint32(frame[6]&0x01)<<23 | uint32(frame[7])<<15 | uint32(frame[8])<<7 | uint32(frame[9])>>1

	if sv.NIC != 0 || rawLat != 0 || rawLon != 0 {
		sv.PositionValid = true
		sv.Latitude = float64(rawLat) * 360.0 / 16777216.0
		if sv.Latitude > 90 {
			sv.Latitude -= 180
		}
		sv.Longitude = float64(rawLon) * 360.0 / 16777216.0
		if sv.Longitude > 180 {
			sv.Longitude -= 360
		}
	}

	rawAlt := uint32(frame[10])<<4 | uint32(frame[11]&0xf0)>>4
	if rawAlt != 0 {
		sv.AltitudeValid = true
		sv.Altitude = int(rawAlt-1)*25 - 1000
		if frame[9]&1 != 0 {
			sv.AltitudeType = AltitudeGeometric
		} else {
			sv.AltitudeType = AltitudeBarometric
		}
	}

	sv.AirGround = AirGroundState((frame[12] >> 6) & 0x03)

	switch sv.AirGround {
	case AirborneSubsonic, AirborneSupersonic:
		rawNS := int(frame[12]&0x1f)<<6 | int(frame[13]&0xfc)>>2
		if rawNS&0x3ff != 0 {
			sv.NSVelValid = true
			sv.NSVel = (rawNS & 0x3ff) - 1
			if rawNS&0x400 != 0 {
				sv.NSVel = -sv.NSVel
			}
			if sv.AirGround == AirborneSupersonic {
				sv.NSVel *= 4
			}
		}

		rawEW := int(frame[13]&0x03)<<9 | int(frame[14])<<1 | int(frame[15]&0x80)>>7
		if rawEW&0x3ff != 0 {
			sv.EWVelValid = true
			sv.EWVel = (rawEW & 0x3ff) - 1
			if rawEW&0x400 != 0 {
				sv.EWVel = -sv.EWVel
			}
			if sv.AirGround == AirborneSupersonic {
				sv.EWVel *= 4
			}
		}

		if sv.NSVelValid && sv.EWVelValid {
			if sv.NSVel != 0 || sv.EWVel != 0 {
				sv.TrackValid = true
				sv.TrackType = TrackAirborne
				deg := math.Mod(360+90-math.Atan2(float64(sv.NSVel), float64(sv.EWVel))*180/math.Pi, 360)
				sv.Track = uint16(deg)
			}
			sv.SpeedValid = true
			sv.Speed = int(math.Sqrt(float64(sv.NSVel*sv.NSVel + sv.EWVel*sv.EWVel)))
		}

		rawVVel := int(frame[15]&0x7f)<<4 | int(frame[16]&0xf0)>>4
		if rawVVel&0x1ff != 0 {
			sv.VertRateValid = true
			if rawVVel&0x400 != 0 {
				sv.VertRateSource = AltitudeBarometric
			} else {
				sv.VertRateSource = AltitudeGeometric
			}
			sv.VertRate = ((rawVVel & 0x1ff) - 1) * 64
			if rawVVel&0x200 != 0 {
				sv.VertRate = -sv.VertRate
			}
		}

	case Ground:
		rawGS := int(frame[12]&0x1f)<<6 | int(frame[13]&0xfc)>>2
		if rawGS != 0 {
			sv.SpeedValid = true
			sv.Speed = (rawGS & 0x3ff) - 1
		}

		rawTrack := int(frame[13]&0x03)<<9 | int(frame[14])<<1 | int(frame[15]&0x80)>>7
		switch (rawTrack & 0x0600) >> 9 {
		case 1:
			sv.TrackValid, sv.TrackType = true, TrackGround
		case 2:
			sv.TrackValid, sv.TrackType = true, TrackGroundMagHeading
		case 3:
			sv.TrackValid, sv.TrackType = true, TrackGroundTrueHeading
		}
		if sv.TrackValid {
			sv.Track = uint16((rawTrack & 0x1ff) * 360 / 512)
		}

		sv.LengthWidthValid = true
		sv.Length = 15 + 10*float64((frame[15]&0x38)>>3)
		sv.Width = dimensionsWidths[(frame[15]&0x78)>>3]
		sv.PositionOffset = frame[15]&0x04 != 0

	case AirGroundReserved:
		// nothing
	}

	if frame[0]&7 == 2 || frame[0]&7 == 3 {
		sv.UTCCoupled = false
		sv.TISBSiteID = int(frame[16] & 0x0f)
	} else {
		sv.UTCCoupled = frame[16]&0x08 != 0
		sv.TISBSiteID = 0
	}

	return sv
}
