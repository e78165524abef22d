package hex

import (
	"fmt"
	"strings"
)

// Direction is one of the six hex neighbor directions, clockwise from NE.
type Direction uint8

const (
	NE Direction = iota
	E
	SE
	SW
	W
	NW
)

// Directions lists all six directions in clockwise order.
var Directions = [6]Direction{NE, E, SE, SW, W, NW}

// String returns the compass name of the direction.
func (d Direction) String() string {
	switch d {
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case SW:
		return "SW"
	case W:
		return "W"
	case NW:
		return "NW"
	default:
		return "Unknown"
	}
}

// Delta returns the axial unit vector for one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case NE:
		return 0, -1
	case E:
		return 1, 0
	case SE:
		return 1, 1
	case SW:
		return 0, 1
	case W:
		return -1, 0
	case NW:
		return -1, -1
	default:
		return 0, 0
	}
}

// Opposite returns the direction rotated by 180°.
func (d Direction) Opposite() Direction {
	if d > NW {
		return d
	}
	return (d + 3) % 6
}

// OrthoDir is a screen-orthogonal direction used for cursor movement.
type OrthoDir uint8

const (
	North OrthoDir = iota
	East
	South
	West
)

// String returns the name of the orthogonal direction.
func (d OrthoDir) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "Unknown"
	}
}

// OrthoMode selects which diagonal is preferred when moving North or South,
// where no single hex neighbor lies straight up or down.
type OrthoMode uint8

const (
	// OrthoXY tries NE before NW going North and SW before SE going South.
	OrthoXY OrthoMode = iota
	// OrthoXZ tries NW before NE going North and SE before SW going South.
	OrthoXZ
)

// String returns the config name of the mode.
func (m OrthoMode) String() string {
	if m == OrthoXZ {
		return "xz"
	}
	return "xy"
}

// ParseOrthoMode parses "xy" or "xz" (case-insensitive). Empty means xy.
func ParseOrthoMode(s string) (OrthoMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "xy":
		return OrthoXY, nil
	case "xz":
		return OrthoXZ, nil
	default:
		return OrthoXY, fmt.Errorf("hex: unknown ortho mode %q", s)
	}
}

// candidates returns the neighbor directions tried, in order, for an
// orthogonal move.
func (m OrthoMode) candidates(d OrthoDir) []Direction {
	switch d {
	case North:
		if m == OrthoXZ {
			return []Direction{NW, NE}
		}
		return []Direction{NE, NW}
	case East:
		return []Direction{E, SE, NE}
	case South:
		if m == OrthoXZ {
			return []Direction{SE, SW}
		}
		return []Direction{SW, SE}
	case West:
		return []Direction{W, NW, SW}
	default:
		return nil
	}
}
