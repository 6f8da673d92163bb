package dice_test

import (
	"sort"
	"testing"

	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/arena/internal/game/dice"
)

func TestCryptoSourceIntn_Range(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		if v < 0 || v >= 6 {
			t.Fatalf("Intn(6) = %d, out of range", v)
		}
	}
}

func TestCryptoSourceIntn_PanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Intn(0) did not panic")
		}
	}()
	dice.NewCryptoSource().Intn(0)
}

func TestCryptoSourceFloat64_Range(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, out of range", v)
		}
	}
}

// sequenceSource replays a fixed Intn sequence, cycling at the end.
type sequenceSource struct {
	ints []int
	pos  int
}

func (s *sequenceSource) Intn(n int) int {
	v := s.ints[s.pos%len(s.ints)]
	s.pos++
	return v % n
}

func (s *sequenceSource) Float64() float64 { return 0 }

func TestShuffle_Deterministic(t *testing.T) {
	items := []int{1, 2, 3, 4}
	// Always drawing 0 swaps each suffix head with index 0.
	dice.Shuffle(items, &sequenceSource{ints: []int{0}})
	want := []int{2, 3, 4, 1}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("items = %v, want %v", items, want)
		}
	}
}

func TestPropertyShuffleIsPermutation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		items := rapid.SliceOfN(rapid.IntRange(0, 100), 1, 20).Draw(rt, "items")
		original := append([]int(nil), items...)

		dice.Shuffle(items, dice.NewCryptoSource())

		a := append([]int(nil), original...)
		b := append([]int(nil), items...)
		sort.Ints(a)
		sort.Ints(b)
		for i := range a {
			if a[i] != b[i] {
				rt.Fatalf("shuffle changed elements: %v vs %v", original, items)
			}
		}
	})
}

func TestLoggedSource_Delegates(t *testing.T) {
	src := dice.NewLoggedSource(&sequenceSource{ints: []int{3, 1}}, zap.NewNop())
	if got := src.Intn(10); got != 3 {
		t.Errorf("Intn = %d, want 3", got)
	}
	if got := src.Intn(10); got != 1 {
		t.Errorf("Intn = %d, want 1", got)
	}
	if got := src.Float64(); got != 0 {
		t.Errorf("Float64 = %v, want 0", got)
	}
}
