package tile

import (
	"fmt"
	"strings"
)

// Attribute is a named condition on a tile. The numeric codes are stable
// and grouped by dimension: 1x elevation, 2x terrain, 3x water, 4x detail.
type Attribute int

const (
	AttrNone Attribute = 0

	AttrSea      Attribute = 10
	AttrValley   Attribute = 11
	AttrPlain    Attribute = 12
	AttrHill     Attribute = 13
	AttrMountain Attribute = 14

	AttrStone   Attribute = 20
	AttrGrass   Attribute = 21
	AttrSnow    Attribute = 22
	AttrVolcano Attribute = 23

	AttrDry     Attribute = 30
	AttrFeature Attribute = 31

	AttrEmpty   Attribute = 40
	AttrTrees   Attribute = 41
	AttrVillage Attribute = 42
	AttrFort    Attribute = 43
)

var attributeNames = map[Attribute]string{
	AttrSea:      "elevation:sea",
	AttrValley:   "elevation:valley",
	AttrPlain:    "elevation:plain",
	AttrHill:     "elevation:hill",
	AttrMountain: "elevation:mountain",
	AttrStone:    "terrain:stone",
	AttrGrass:    "terrain:grass",
	AttrSnow:     "terrain:snow",
	AttrVolcano:  "terrain:volcano",
	AttrDry:      "water:dry",
	AttrFeature:  "water:feature",
	AttrEmpty:    "detail:empty",
	AttrTrees:    "detail:trees",
	AttrVillage:  "detail:village",
	AttrFort:     "detail:fort",
}

// Attributes lists every defined attribute in code order.
func Attributes() []Attribute {
	return []Attribute{
		AttrSea, AttrValley, AttrPlain, AttrHill, AttrMountain,
		AttrStone, AttrGrass, AttrSnow, AttrVolcano,
		AttrDry, AttrFeature,
		AttrEmpty, AttrTrees, AttrVillage, AttrFort,
	}
}

// String returns the "dimension:value" name of the attribute.
func (a Attribute) String() string {
	if name, ok := attributeNames[a]; ok {
		return name
	}
	return fmt.Sprintf("attribute(%d)", int(a))
}

// ParseAttribute accepts either the full "dimension:value" name or the bare
// value name ("hill", "volcano").
func ParseAttribute(name string) (Attribute, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, a := range Attributes() {
		full := attributeNames[a]
		if key == full || key == full[strings.IndexByte(full, ':')+1:] {
			return a, nil
		}
	}
	return AttrNone, fmt.Errorf("tile: unknown attribute %q", name)
}

// HasAttribute tests one named condition. Terrain reads are elevation-aware
// (stone needs land, grass needs a mid elevation, volcano a capped one) and
// water and detail conditions never hold on capped tiles.
func (s State) HasAttribute(a Attribute) bool {
	switch a {
	case AttrSea:
		return s.Elevation == Sea
	case AttrValley:
		return s.Elevation == Valley
	case AttrPlain:
		return s.Elevation == Plain
	case AttrHill:
		return s.Elevation == Hill
	case AttrMountain:
		return s.Elevation == Mountain

	case AttrStone:
		return s.Terrain == TerrainStone && s.Elevation > Sea
	case AttrGrass:
		return s.Terrain == TerrainGrass && !s.Capped()
	case AttrSnow:
		return s.Terrain == TerrainSnow
	case AttrVolcano:
		return s.Terrain == TerrainVolcano && s.Capped()

	case AttrDry:
		return s.Water == Dry && !s.Capped()
	case AttrFeature:
		return s.Water == Feature && !s.Capped()

	case AttrEmpty:
		return s.Detail == Empty && !s.Capped()
	case AttrTrees:
		return s.Detail == Trees && !s.Capped()
	case AttrVillage:
		return s.Detail == Village && !s.Capped()
	case AttrFort:
		return s.Detail == Fort && !s.Capped()
	}
	return false
}

// HasAll reports whether every attribute holds. An empty set is false.
func (s State) HasAll(atts ...Attribute) bool {
	if len(atts) == 0 {
		return false
	}
	for _, a := range atts {
		if !s.HasAttribute(a) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one attribute holds. An empty set is false.
func (s State) HasAny(atts ...Attribute) bool {
	for _, a := range atts {
		if s.HasAttribute(a) {
			return true
		}
	}
	return false
}
