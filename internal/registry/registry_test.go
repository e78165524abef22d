package registry

import (
	"testing"

	"github.com/vovakirdan/hextiles/internal/core"
	"github.com/vovakirdan/hextiles/internal/hex"
	"github.com/vovakirdan/hextiles/internal/tile"
)

func TestBuiltinGenerators(t *testing.T) {
	list := List()
	if len(list) < 2 {
		t.Fatalf("expected at least 2 generators, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Name >= list[i].Name {
			t.Errorf("List not sorted: %q before %q", list[i-1].Name, list[i].Name)
		}
	}

	for _, name := range []string{"weighted", "noise"} {
		if !Exists(name) {
			t.Fatalf("%s not registered", name)
		}
		g, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%s): %v", name, err)
		}
		gen := tile.Generator{Weights: tile.DefaultWeights(), Sampler: core.NewRNG(5), MaxAttempts: 1000}
		b, err := g(hex.P(3, 2, 2), hex.OrthoXY, gen, 5)
		if err != nil {
			t.Fatalf("%s generator failed: %v", name, err)
		}
		if b.Len() != 10 {
			t.Errorf("%s generated %d cells", name, b.Len())
		}
	}
}

func TestUnknownGenerator(t *testing.T) {
	if Exists("perlin") {
		t.Fatal("perlin should not be registered")
	}
	if _, err := Get("perlin"); err == nil {
		t.Error("Get of unknown generator should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("weighted", "", nil)
}
