package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseStation parses the -station flag's "lat,lon[,elev_ft]" form,
// following the teacher's terse comma-split parsing of compact CLI
// positional arguments (e.g. direwolf's "-B" bitrate string).
func ParseStation(s string) (Station, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return Station{}, fmt.Errorf("config: station must be \"lat,lon\" or \"lat,lon,elev_ft\", got %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Station{}, fmt.Errorf("config: invalid station latitude %q: %w", parts[0], err)
	}
	if lat < -90 || lat > 90 {
		return Station{}, fmt.Errorf("config: station latitude %v out of range [-90,90]", lat)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Station{}, fmt.Errorf("config: invalid station longitude %q: %w", parts[1], err)
	}
	if lon < -180 || lon > 180 {
		return Station{}, fmt.Errorf("config: station longitude %v out of range [-180,180]", lon)
	}

	var elev float64
	if len(parts) == 3 {
		elev, err = strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return Station{}, fmt.Errorf("config: invalid station elevation %q: %w", parts[2], err)
		}
	}

	return Station{Latitude: lat, Longitude: lon, ElevationFt: elev}, nil
}
