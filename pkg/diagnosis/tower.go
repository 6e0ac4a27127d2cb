package diagnosis

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

type Operator string

const (
	OperatorMobilis Operator = "Mobilis"
	OperatorDjezzy  Operator = "Djezzy"
	OperatorOoredoo Operator = "Ooredoo"
)

type Tower struct {
	Name      string   `json:"name" yaml:"name"`
	Latitude  float64  `json:"latitude" yaml:"latitude"`
	Longitude float64  `json:"longitude" yaml:"longitude"`
	Operator  Operator `json:"operator" yaml:"operator"`
}

// Catalog is an ordered tower list. Order matters: it breaks distance ties.
type Catalog []Tower

func DefaultCatalog() Catalog {
	return Catalog{
		{Name: "BTS-Center", Latitude: 36.7538, Longitude: 3.0588, Operator: OperatorMobilis},
		{Name: "BTS-East", Latitude: 36.7119, Longitude: 3.1895, Operator: OperatorDjezzy},
		{Name: "BTS-West", Latitude: 36.7431, Longitude: 3.0372, Operator: OperatorOoredoo},
		{Name: "BTS-North", Latitude: 36.7838, Longitude: 3.0688, Operator: OperatorMobilis},
		{Name: "BTS-South", Latitude: 36.7238, Longitude: 3.0488, Operator: OperatorDjezzy},
	}
}

type catalogFile struct {
	Towers []Tower `yaml:"towers"`
}

func ParseCatalog(data []byte) (Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse tower catalog: %w", err)
	}

	for i, t := range file.Towers {
		if t.Name == "" {
			return nil, fmt.Errorf("tower #%d: %w", i, invalid("name", "must not be empty"))
		}
		if t.Operator == "" {
			return nil, fmt.Errorf("tower %s: %w", t.Name, invalid("operator", "must not be empty"))
		}
		if err := validateCoordinates(t.Latitude, t.Longitude); err != nil {
			return nil, fmt.Errorf("tower %s: %w", t.Name, err)
		}
	}

	return Catalog(file.Towers), nil
}

func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tower catalog: %w", err)
	}
	return ParseCatalog(data)
}

func (c Catalog) ForOperator(operator Operator) Catalog {
	var towers Catalog
	for _, t := range c {
		if t.Operator == operator {
			towers = append(towers, t)
		}
	}
	return towers
}

// Nearest returns the closest tower of the operator, or of the whole catalog when
// the operator has none. ok is false only for an empty catalog.
func (c Catalog) Nearest(lat, lon float64, operator Operator) (Tower, float64, bool) {
	candidates := c.ForOperator(operator)
	if len(candidates) == 0 {
		candidates = c
	}
	if len(candidates) == 0 {
		return Tower{}, 0, false
	}

	best := 0
	bestDist := math.Inf(1)
	for i, t := range candidates {
		d := DistanceKm(lat, lon, t.Latitude, t.Longitude)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return candidates[best], bestDist, true
}
