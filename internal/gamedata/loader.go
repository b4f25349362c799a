package gamedata

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"math/rand"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	return LoadFS[T](dataFS, filename)
}

// LoadFS reads and unmarshals a JSON file from fsys. Tests use it to feed
// alternative tables.
func LoadFS[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("read data file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("parse data file %s: %w", filename, err)
	}

	return result, nil
}

// MustLoad reads and unmarshals a JSON file, panicking on error.
// Use this for data that must be present for the game to function.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}

// Range is an inclusive [min, max] integer range, written in JSON as a
// two-element array.
type Range [2]int

// Min returns the lower bound.
func (r Range) Min() int { return r[0] }

// Max returns the upper bound.
func (r Range) Max() int { return r[1] }

// Valid reports whether the bounds are ordered.
func (r Range) Valid() bool { return r[0] <= r[1] }

// Roll draws a uniform value in the range.
func (r Range) Roll(rng *rand.Rand) int {
	if r[1] <= r[0] {
		return r[0]
	}
	return r[0] + rng.Intn(r[1]-r[0]+1)
}
