package snake

import (
	"fmt"
	"math/rand"
)

// DefaultSpawnWeights weight how many replacement items appear after a meal:
// index 0 is one item, index 1 two items, and so on.
var DefaultSpawnWeights = []int{70, 20, 10}

// FoodManager tracks the active food cells.
type FoodManager struct {
	grid     *Grid
	rng      *rand.Rand
	occupied func() IndexSet
	active   IndexSet
	weights  []int
}

// NewFoodManager creates a manager placing food on grid. occupied reports the
// indices currently held by agent bodies and may be nil.
func NewFoodManager(grid *Grid, rng *rand.Rand, occupied func() IndexSet) *FoodManager {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &FoodManager{
		grid:     grid,
		rng:      rng,
		occupied: occupied,
		active:   NewIndexSet(),
		weights:  DefaultSpawnWeights,
	}
}

// SetWeights replaces the replacement-count weights. Empty or all-zero
// weights fall back to the defaults.
func (f *FoodManager) SetWeights(weights []int) {
	total := 0
	for _, w := range weights {
		total += max(w, 0)
	}
	if total == 0 {
		f.weights = DefaultSpawnWeights
		return
	}
	f.weights = append([]int(nil), weights...)
}

// ReplacementCount draws how many items to spawn after a meal.
func (f *FoodManager) ReplacementCount() int {
	total := 0
	for _, w := range f.weights {
		total += max(w, 0)
	}
	roll := f.rng.Intn(total)
	for i, w := range f.weights {
		if w <= 0 {
			continue
		}
		if roll < w {
			return i + 1
		}
		roll -= w
	}
	return 1
}

// Generate places count new food items on free cells.
// Random draws are capped at four times the cell count; after that the free
// cells are scanned directly. ErrGridSaturated is returned when none is left.
func (f *FoodManager) Generate(count int) error {
	for n := 0; n < count; n++ {
		idx, ok := f.pick(f.reserved())
		if !ok {
			return fmt.Errorf("food: placing item %d of %d: %w", n+1, count, ErrGridSaturated)
		}
		f.place(idx)
	}
	return nil
}

func (f *FoodManager) reserved() IndexSet {
	r := f.grid.Walls().Union(f.active)
	if f.occupied != nil {
		r.Union(f.occupied())
	}
	return r
}

func (f *FoodManager) pick(reserved IndexSet) (int, bool) {
	size := f.grid.Size()
	if size <= 0 {
		return 0, false
	}
	for attempt := 0; attempt < 4*size; attempt++ {
		i := f.rng.Intn(size)
		if !reserved.Has(i) {
			return i, true
		}
	}
	free := make([]int, 0, max(0, size-len(reserved)))
	for i := 0; i < size; i++ {
		if !reserved.Has(i) {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return 0, false
	}
	return free[f.rng.Intn(len(free))], true
}

func (f *FoodManager) place(index int) {
	if c, ok := f.grid.CellAtIndex(index); ok {
		c.Kind = CellFood
	}
	f.active.Add(index)
}

// Drop adds an index to the active set without any reservation check.
func (f *FoodManager) Drop(index int) {
	f.active.Add(index)
}

// Consume removes an index from the active set and reports whether it was
// there. The cell's kind is left to the caller.
func (f *FoodManager) Consume(index int) bool {
	if !f.active.Has(index) {
		return false
	}
	f.active.Remove(index)
	return true
}

// Has reports whether index holds food.
func (f *FoodManager) Has(index int) bool {
	return f.active.Has(index)
}

// Active returns the food indices in ascending order.
func (f *FoodManager) Active() []int {
	return f.active.Sorted()
}

// Len returns the number of active food items.
func (f *FoodManager) Len() int {
	return len(f.active)
}

// Clear drops all food.
func (f *FoodManager) Clear() {
	f.active = NewIndexSet()
}
