package tile

import (
	"fmt"
	"strings"
)

// Element is one of the six forces a player can apply to a tile.
type Element uint8

const (
	None Element = iota
	Air
	Fire
	Ice
	Plant
	Stone
	Water
)

// Elements lists the six applicable elements in key order.
func Elements() []Element {
	return []Element{Air, Fire, Ice, Plant, Stone, Water}
}

// String returns the lowercase name of the element.
func (e Element) String() string {
	switch e {
	case None:
		return "none"
	case Air:
		return "air"
	case Fire:
		return "fire"
	case Ice:
		return "ice"
	case Plant:
		return "plant"
	case Stone:
		return "stone"
	case Water:
		return "water"
	default:
		return "unknown"
	}
}

// CascadeName returns the name of the event the element triggers when it
// cascades, or "" for None.
func (e Element) CascadeName() string {
	switch e {
	case Air:
		return "Whirlwind"
	case Fire:
		return "Eruption"
	case Ice:
		return "Blizzard"
	case Plant:
		return "Overgrowth"
	case Stone:
		return "Landslide"
	case Water:
		return "Flood"
	default:
		return ""
	}
}

// ParseElement parses an element name (case-insensitive) or its key digit 1-6.
func ParseElement(name string) (Element, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, e := range Elements() {
		if key == e.String() || key == fmt.Sprint(i+1) {
			return e, nil
		}
	}
	return None, fmt.Errorf("tile: unknown element %q", name)
}
