package diagnosis

import (
	"math"
	"strings"
)

type Place string

const (
	PlaceIndoor  Place = "Indoor"
	PlaceOutdoor Place = "Outdoor"
)

func (p Place) Valid() bool {
	return p == PlaceIndoor || p == PlaceOutdoor
}

// Measurement is one user-submitted reading. RSRP is in dBm and SINR in dB.
type Measurement struct {
	Latitude    float64  `json:"lat"`
	Longitude   float64  `json:"lon"`
	RSRP        int      `json:"rsrp"`
	SINR        int      `json:"sinr"`
	NetworkType string   `json:"network_type"`
	Operator    Operator `json:"operator"`
	Place       Place    `json:"place"`
	Wilaya      string   `json:"wilaya"`
	City        string   `json:"city"`
}

func (m Measurement) Validate() error {
	if err := validateCoordinates(m.Latitude, m.Longitude); err != nil {
		return err
	}
	if !m.Place.Valid() {
		return invalid("place", "must be %q or %q, got %q", PlaceIndoor, PlaceOutdoor, m.Place)
	}
	if strings.TrimSpace(string(m.Operator)) == "" {
		return invalid("operator", "must not be empty")
	}
	if strings.TrimSpace(m.NetworkType) == "" {
		return invalid("network_type", "must not be empty")
	}
	return nil
}

func validateCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return invalid("latitude", "must be a number between -90 and 90")
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) || lon < -180 || lon > 180 {
		return invalid("longitude", "must be a number between -180 and 180")
	}
	return nil
}
