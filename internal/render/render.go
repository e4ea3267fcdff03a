// Package render formats a RawFrame and its DecodedMessage as
// human-readable text for the CLI binary's decoded-block output (the
// -raw line is written by the CLI itself), enriching it with
// range/bearing/UTM from a configured station position and with
// wall-clock timestamps. It never rejects or alters a decoded message;
// it only formats fields the core library already decoded.
//
// Grounded on the teacher's cmd/samoyed-ll2utm (golang/geo +
// tzneal/coordconv UTM conversion) and latlong.go's ll_bearing_deg
// (great-circle initial bearing, reproduced here since neither geo nor
// coordconv exposes a bearing helper), plus lestrrat-go/strftime for
// the teacher's "-T" wall-clock timestamp format flag.
package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/lestrrat-go/strftime"
	"github.com/tzneal/coordconv"

	"github.com/kb9hzx/uat978/internal/config"
	"github.com/kb9hzx/uat978/uat"
)

// earthRadiusNM is used to convert the geo package's angular distance
// into nautical miles for the aviation-conventional range figure.
const earthRadiusNM = 3440.065

func d2r(deg float64) float64 { return deg * math.Pi / 180 }
func r2d(rad float64) float64 { return rad * 180 / math.Pi }

// RangeBearing returns great-circle range (nautical miles) and initial
// bearing (degrees, 0-360) from the station to the target position.
func RangeBearing(station config.Station, lat, lon float64) (rangeNM, bearingDeg float64) {
	a := s2.LatLngFromDegrees(station.Latitude, station.Longitude)
	b := s2.LatLngFromDegrees(lat, lon)
	rangeNM = float64(a.Distance(b)) * earthRadiusNM

	lat1, lon1 := d2r(station.Latitude), d2r(station.Longitude)
	lat2, lon2 := d2r(lat), d2r(lon)
	y := math.Sin(lon2-lon1) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(lon2-lon1)
	b2 := r2d(math.Atan2(y, x))
	if b2 < 0 {
		b2 += 360
	}
	return rangeNM, b2
}

// UTM converts a WGS84 position to UTM using the same
// coordconv.DefaultUTMConverter the teacher's ll2utm tool uses.
func UTM(lat, lon float64) (string, error) {
	latlng := s2.LatLng{Lat: s1.Angle(d2r(lat)), Lng: s1.Angle(d2r(lon))}
	coord, err := coordconv.DefaultUTMConverter.ConvertFromGeodetic(latlng, 0)
	if err != nil {
		return "", fmt.Errorf("render: UTM conversion: %w", err)
	}
	hemi := 'N'
	if coord.Hemisphere == coordconv.HemisphereSouth {
		hemi = 'S'
	}
	return fmt.Sprintf("%dT%c %.0fE %.0fN", coord.Zone, hemi, coord.Easting, coord.Northing), nil
}

// Clock formats a sample-index timestamp as wall-clock time using a
// strftime layout and a stream start time, following the teacher's "-T"
// flag.
func Clock(layout string, start time.Time, seconds float64) (string, error) {
	f, err := strftime.New(layout)
	if err != nil {
		return "", fmt.Errorf("render: bad time format %q: %w", layout, err)
	}
	t := start.Add(time.Duration(seconds * float64(time.Second)))
	var sb strings.Builder
	if err := f.Format(&sb, t); err != nil {
		return "", fmt.Errorf("render: formatting timestamp: %w", err)
	}
	return sb.String(), nil
}

// Options controls which enrichments Frame applies.
type Options struct {
	Station    *config.Station
	TimeFormat string
	StartTime  time.Time
}

// Frame renders one raw frame and its decoded message as a single text
// line plus indented field and optional enrichment lines.
func Frame(raw uat.RawFrame, msg uat.DecodedMessage, opts Options) string {
	var sb strings.Builder

	seconds := float64(raw.SampleIndex) / 2083334.0
	fmt.Fprintf(&sb, "[%c] t=%.6fs", raw.Direction, seconds)
	if opts.TimeFormat != "" {
		if clk, err := Clock(opts.TimeFormat, opts.StartTime, seconds); err == nil {
			fmt.Fprintf(&sb, " (%s)", clk)
		}
	}
	fmt.Fprintf(&sb, " rs_errors=%d %X\n", raw.RSErrors, raw.Payload)

	fmt.Fprintf(&sb, "  hdr: type=%d addr_qual=%s addr=%06X\n",
		msg.Header.MDBType, msg.Header.AddressQualifier, msg.Header.Address)

	if msg.SV != nil {
		sv := msg.SV
		fmt.Fprintf(&sb, "  sv:  nic=%d lat=%.5f lon=%.5f alt=%dft track=%d\n",
			sv.NIC, sv.Latitude, sv.Longitude, sv.Altitude, sv.Track)

		if opts.Station != nil && sv.NIC > 0 {
			rng, brg := RangeBearing(*opts.Station, sv.Latitude, sv.Longitude)
			fmt.Fprintf(&sb, "  rel: range=%.1fnm bearing=%.0f\n", rng, brg)
			if u, err := UTM(sv.Latitude, sv.Longitude); err == nil {
				fmt.Fprintf(&sb, "  utm: %s\n", u)
			}
		}
	}

	if msg.MS != nil {
		fmt.Fprintf(&sb, "  ms:  callsign=%q nic_baro=%d nacp=%d nacv=%d\n",
			msg.MS.Callsign, msg.MS.NICBaro, msg.MS.NACp, msg.MS.NACv)
	}

	if msg.AuxSV != nil && msg.AuxSV.SecondaryAltitudeValid {
		fmt.Fprintf(&sb, "  aux: secondary_alt=%dft\n", msg.AuxSV.SecondaryAltitude)
	}

	return sb.String()
}
