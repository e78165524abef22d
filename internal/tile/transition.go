package tile

// Apply returns the state after element e lands on s. direct is true when
// the player targeted this tile and false when the element arrived through
// a cascade. A fort survives most direct applications but not indirect ones.
//
// Every rule maps a legal state to a legal state. Apply(None, ...) and
// unknown elements return s unchanged.
func (s State) Apply(e Element, direct bool) State {
	switch e {
	case Air:
		s.applyAir(direct)
	case Fire:
		s.applyFire(direct)
	case Ice:
		s.applyIce(direct)
	case Plant:
		s.applyPlant(direct)
	case Stone:
		s.applyStone(direct)
	case Water:
		s.applyWater(direct)
	}
	return s
}

// Cascade reports whether applying e to s sets off a cascade:
//
//	Air   + sea of stone          = Whirlwind
//	Fire  + volcano               = Eruption
//	Ice   + ice cap               = Blizzard
//	Plant + grass with trees      = Overgrowth
//	Stone + bare mountain         = Landslide
//	Water + hill with a lake      = Flood
func (s State) Cascade(e Element) bool {
	switch e {
	case Air:
		return s.Elevation == Sea && s.Terrain == TerrainStone
	case Fire:
		return s.Capped() && s.Terrain == TerrainVolcano
	case Ice:
		return s.Capped() && s.Terrain == TerrainSnow
	case Plant:
		return s.Terrain == TerrainGrass && s.Detail == Trees
	case Stone:
		return s.Elevation == Mountain && s.Terrain == TerrainStone
	case Water:
		return s.Elevation == Hill && s.Water == Feature
	}
	return false
}

// removeFeatures clears water and detail and strips grass (or a volcano)
// back to stone.
func (s *State) removeFeatures() {
	s.Water = Dry
	s.Detail = Empty
	if s.Terrain == TerrainGrass {
		s.Terrain = TerrainStone
	}
}

// erode drops one layer. Grass, volcanoes and trees hold the ground.
func (s *State) erode() {
	if s.Elevation == Sea {
		return
	}
	if s.Terrain == TerrainGrass || s.Detail == Trees {
		return
	}
	s.Elevation--
	if s.Elevation == Sea {
		s.removeFeatures()
	}
}

// elevate raises one layer.
func (s *State) elevate() {
	if s.Elevation >= Mountain {
		return
	}
	s.Elevation++
	if s.Elevation == Mountain {
		s.removeFeatures()
	}
}

// keepsFort reports whether a fort withstands this application.
func (s State) keepsFort(direct bool) bool {
	return s.Detail == Fort && direct
}

// applyAir blows away villages and forts, then wears the land down.
func (s *State) applyAir(direct bool) {
	switch s.Detail {
	case Fort:
		if !direct {
			s.Detail = Empty
		}
	case Village:
		s.Detail = Empty
	default:
		if s.Elevation == Mountain {
			s.removeFeatures()
		}
		s.erode()
	}
}

// applyFire burns mid elevations down to stone. On capped tiles it first
// makes a volcano, and a second application erupts: the sea rises and the
// mountain collapses.
func (s *State) applyFire(direct bool) {
	switch s.Elevation {
	case Sea:
		if s.Terrain == TerrainVolcano {
			s.removeFeatures()
			s.elevate()
		} else {
			s.Terrain = TerrainVolcano
		}
	case Mountain:
		if s.Terrain == TerrainVolcano {
			s.removeFeatures()
			s.erode()
		} else {
			s.Terrain = TerrainVolcano
		}
	default:
		s.Terrain = TerrainStone
		if !s.keepsFort(direct) {
			s.Detail = Empty
		}
	}
}

// applyIce covers the tile in snow. Snow that is already there kills the
// detail beneath it.
func (s *State) applyIce(direct bool) {
	if s.Capped() {
		s.Terrain = TerrainSnow
		return
	}
	if s.Terrain == TerrainSnow {
		if !s.keepsFort(direct) {
			s.Detail = Empty
		}
		return
	}
	s.Terrain = TerrainSnow
	switch s.Detail {
	case Fort:
		if !direct {
			s.Detail = Empty
		}
	case Village:
		s.Detail = Empty
	}
}

// applyPlant grows grass, then trees. Planting the sea raises an island.
// Mountains are too high for anything to grow.
func (s *State) applyPlant(direct bool) {
	switch {
	case s.Elevation == Sea:
		s.Terrain = TerrainGrass
		s.elevate()
	case s.Elevation < Mountain:
		if s.Terrain == TerrainGrass {
			if !s.keepsFort(direct) {
				s.Detail = Trees
			}
			return
		}
		s.Terrain = TerrainGrass
		if s.Detail == Village {
			s.Detail = Empty
		}
		if s.Detail == Fort && !direct {
			s.Detail = Empty
		}
	}
}

// applyStone builds land up. Settlements are crushed and water is filled
// before the tile rises. On a mountain it only clears snow and volcanoes.
func (s *State) applyStone(direct bool) {
	switch {
	case s.Elevation == Mountain:
		s.Terrain = TerrainStone
	case s.Elevation == Sea:
		s.removeFeatures()
		s.elevate()
	case s.Detail == Fort:
		if !direct {
			s.Detail = Empty
		}
	case s.Detail == Village:
		s.Detail = Empty
	case s.Water != Dry:
		s.Water = Dry
	default:
		s.elevate()
	}
}

// applyWater floods the tile. The sea washes snow and volcanoes away,
// mountains erode into lakes, and a tile that already holds water erodes.
func (s *State) applyWater(direct bool) {
	switch s.Elevation {
	case Sea:
		s.Terrain = TerrainStone
	case Mountain:
		s.removeFeatures()
		s.erode()
		s.Water = Feature
	default:
		switch {
		case s.Detail == Fort:
			if !direct {
				s.Detail = Empty
				s.Water = Feature
			}
		case s.Detail == Village:
			s.Detail = Empty
			s.Water = Feature
		case s.Water != Feature:
			s.Water = Feature
		default:
			s.erode()
		}
	}
}
