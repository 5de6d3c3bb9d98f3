package board

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidConfiguration is returned when the requested counts do not fit
// on the grid.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Validate checks the generation parameters.
func Validate(size, countA, countB int) error {
	if size < 1 {
		return fmt.Errorf("board: size %d: %w", size, ErrInvalidConfiguration)
	}
	if countA < 0 || countB < 0 {
		return fmt.Errorf("board: negative count (%d, %d): %w", countA, countB, ErrInvalidConfiguration)
	}
	if countA+countB > size*size {
		return fmt.Errorf("board: %d targets do not fit in %dx%d: %w",
			countA+countB, size, size, ErrInvalidConfiguration)
	}
	return nil
}

// Generate places countA TargetA and countB TargetB cells uniformly at random
// on a size x size grid. Coordinates are enumerated row-major and shuffled
// with Fisher-Yates, so a given rng state always yields the same grid.
func Generate(size, countA, countB int, rng *rand.Rand) (*Grid, error) {
	if err := Validate(size, countA, countB); err != nil {
		return nil, err
	}

	coords := make([]Coord, 0, size*size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			coords = append(coords, Coord{Row: r, Col: c})
		}
	}

	for i := len(coords) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		coords[i], coords[j] = coords[j], coords[i]
	}

	g := NewGrid(size)
	for i, pos := range coords[:countA+countB] {
		kind := TargetB
		if i < countA {
			kind = TargetA
		}
		g.cells[pos.Row][pos.Col].Kind = kind
	}
	return g, nil
}
