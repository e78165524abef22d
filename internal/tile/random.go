package tile

import (
	"errors"
	"fmt"
)

// ErrNoLegalDraw is returned when random generation gives up, either
// because the weights cannot produce a legal state or because the attempt
// budget ran out.
var ErrNoLegalDraw = errors.New("tile: no legal state drawn")

// Sampler picks an index with probability proportional to its weight.
// It returns a negative value when weights is empty or has no positive entry.
type Sampler interface {
	Index(weights []float64) int
}

// Weights holds one weight vector per dimension. Draws are reduced modulo
// the dimension size, and the terrain vector has a fourth slot that reads
// as a volcano on capped tiles and as grass elsewhere.
type Weights struct {
	Elevation []float64 `yaml:"elevation" json:"elevation"`
	Terrain   []float64 `yaml:"terrain" json:"terrain"`
	Water     []float64 `yaml:"water" json:"water"`
	Detail    []float64 `yaml:"detail" json:"detail"`
}

// DefaultWeights returns an even spread with a slight lean toward land.
func DefaultWeights() Weights {
	return Weights{
		Elevation: []float64{2, 3, 4, 3, 1},
		Terrain:   []float64{3, 4, 2, 1},
		Water:     []float64{4, 1},
		Detail:    []float64{6, 3, 2, 1},
	}
}

// Validate checks that every vector has a positive entry, that no entry is
// negative, and that the weights can produce at least one legal state.
func (w Weights) Validate() error {
	vectors := []struct {
		name   string
		values []float64
	}{
		{"elevation", w.Elevation},
		{"terrain", w.Terrain},
		{"water", w.Water},
		{"detail", w.Detail},
	}
	for _, v := range vectors {
		if len(v.values) == 0 {
			return fmt.Errorf("tile: %s weights are empty", v.name)
		}
		positive := false
		for i, x := range v.values {
			if x < 0 {
				return fmt.Errorf("tile: %s weight %d is negative (%v)", v.name, i, x)
			}
			if x > 0 {
				positive = true
			}
		}
		if !positive {
			return fmt.Errorf("tile: %s weights have no positive entry", v.name)
		}
	}
	if !w.feasible() {
		return fmt.Errorf("%w: weights exclude every legal state", ErrNoLegalDraw)
	}
	return nil
}

// feasible reports whether some combination of positively weighted draws
// survives the post-processing as a legal state.
func (w Weights) feasible() bool {
	for _, e := range support(w.Elevation, 5) {
		for _, t := range support(w.Terrain, 4) {
			for _, wt := range support(w.Water, 2) {
				for _, d := range support(w.Detail, 4) {
					if candidate(e, t, wt, d).Valid() {
						return true
					}
				}
			}
		}
	}
	return false
}

// support returns the distinct residues modulo n of the positively
// weighted indices.
func support(weights []float64, n int) []int {
	seen := make([]bool, n)
	var out []int
	for i, x := range weights {
		if x > 0 && !seen[i%n] {
			seen[i%n] = true
			out = append(out, i%n)
		}
	}
	return out
}

// candidate applies the draw post-processing: capped tiles lose their
// features, and the fourth terrain slot becomes terrain 1.
func candidate(e, t, w, d int) State {
	s := New(Elevation(e), Terrain(t), WaterKind(w), Detail(d))
	if s.Capped() {
		s.removeFeatures()
	}
	if s.Terrain == 3 {
		s.Terrain = TerrainVolcano
	}
	return s
}

// draw produces one post-processed tuple. ok is false when the sampler
// returned its sentinel for any dimension.
func (w Weights) draw(sampler Sampler) (State, bool) {
	e := sampler.Index(w.Elevation)
	t := sampler.Index(w.Terrain)
	wt := sampler.Index(w.Water)
	d := sampler.Index(w.Detail)
	if e < 0 || t < 0 || wt < 0 || d < 0 {
		return State{}, false
	}
	return candidate(e%5, t%4, wt%2, d%4), true
}

// Random draws tuples until one is legal. It does not return if the
// weights cannot produce a legal state; check Weights.Validate first or use
// a Generator with a bounded attempt count.
func Random(weights Weights, sampler Sampler) State {
	for {
		if s, ok := weights.draw(sampler); ok && s.Valid() {
			return s
		}
	}
}

// Generator draws legal states with an optional attempt budget.
type Generator struct {
	Weights Weights
	Sampler Sampler
	// MaxAttempts bounds the rejected tuples per state; 0 means unbounded.
	MaxAttempts int
}

// Next draws one legal state.
func (g Generator) Next() (State, error) {
	if g.MaxAttempts <= 0 {
		return Random(g.Weights, g.Sampler), nil
	}
	for i := 0; i < g.MaxAttempts; i++ {
		if s, ok := g.Weights.draw(g.Sampler); ok && s.Valid() {
			return s, nil
		}
	}
	return State{}, fmt.Errorf("%w after %d attempts", ErrNoLegalDraw, g.MaxAttempts)
}
