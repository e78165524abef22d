package board

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/vovakirdan/hextiles/internal/hex"
	"github.com/vovakirdan/hextiles/internal/tile"
)

// Generate fills a new board cell by cell from gen, in storage order.
func Generate(p hex.Params, mode hex.OrthoMode, gen tile.Generator) (*Board, error) {
	b, err := New(p, mode)
	if err != nil {
		return nil, err
	}
	for i := range b.cells {
		s, err := gen.Next()
		if err != nil {
			return nil, fmt.Errorf("board: cannot generate cell %d: %w", i, err)
		}
		b.cells[i] = s
	}
	return b, nil
}

// Noise shaping for GenerateNoise.
const (
	noiseOctaves     = 4
	noiseFrequency   = 0.18
	noisePersistence = 0.5
	// noiseSpread is the width of the elevation bump around the noise height.
	noiseSpread = 0.9
)

// GenerateNoise fills a new board like Generate, but first skews each cell's
// elevation weights toward a height read from OpenSimplex noise. Neighboring
// cells then tend to share an elevation, which gives coherent seas and
// ranges instead of scattered tiles. The support of every weight vector is
// unchanged, so weights that pass tile.Weights.Validate still work.
func GenerateNoise(p hex.Params, mode hex.OrthoMode, gen tile.Generator, seed int64) (*Board, error) {
	b, err := New(p, mode)
	if err != nil {
		return nil, err
	}

	noise := opensimplex.NewNormalized(seed)
	base := gen.Weights.Elevation
	skewed := make([]float64, len(base))

	for i, c := range b.Coords() {
		height := octaveNoise(noise, c, noiseOctaves, noiseFrequency, noisePersistence)
		target := height * float64(tile.Mountain)
		for j, w := range base {
			d := float64(j%5) - target
			skewed[j] = w * math.Exp(-d*d/(2*noiseSpread*noiseSpread))
		}

		cellGen := gen
		cellGen.Weights.Elevation = skewed
		s, err := cellGen.Next()
		if err != nil {
			return nil, fmt.Errorf("board: cannot generate cell %v: %w", c, err)
		}
		b.cells[i] = s
	}
	return b, nil
}

// octaveNoise samples fractal noise in [0, 1] at the screen position of c.
func octaveNoise(noise opensimplex.Noise, c hex.Coord, octaves int, frequency, persistence float64) float64 {
	// Axial to cartesian: east is +x, and a SW step moves half a cell west.
	x := float64(c.X) - float64(c.Y)*0.5
	y := float64(c.Y) * math.Sqrt(3.0) / 2.0

	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}

// Stats summarizes the cells of a board.
type Stats struct {
	Cells     int
	Elevation [5]int // indexed by tile.Elevation
	Detail    [4]int // indexed by tile.Detail
	Volcanoes int
	Snow      int
	Lakes     int
}

// Stats counts cells by elevation, detail and notable features.
func (b *Board) Stats() Stats {
	var st Stats
	st.Cells = len(b.cells)
	for _, s := range b.cells {
		if int(s.Elevation) < len(st.Elevation) {
			st.Elevation[s.Elevation]++
		}
		if int(s.Detail) < len(st.Detail) {
			st.Detail[s.Detail]++
		}
		switch {
		case s.HasAttribute(tile.AttrVolcano):
			st.Volcanoes++
		case s.HasAttribute(tile.AttrSnow):
			st.Snow++
		}
		if s.HasAttribute(tile.AttrFeature) {
			st.Lakes++
		}
	}
	return st
}
