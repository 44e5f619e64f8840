package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRandomInt verifies the inclusive range contract
func TestRandomInt(t *testing.T) {
	t.Run("stays within inclusive bounds", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			n := RandomInt(3, 7)
			assert.GreaterOrEqual(t, n, 3, "Should never go below min")
			assert.LessOrEqual(t, n, 7, "Should never exceed max")
		}
	})

	t.Run("min equals max returns min", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			assert.Equal(t, 5, RandomInt(5, 5))
		}
	})

	t.Run("min greater than max returns min", func(t *testing.T) {
		assert.Equal(t, 10, RandomInt(10, 5), "Inverted range should not panic")
	})

	t.Run("eventually hits both endpoints", func(t *testing.T) {
		seen := make(map[int]bool)
		for i := 0; i < 1000; i++ {
			seen[RandomInt(1, 2)] = true
		}
		assert.True(t, seen[1], "Should produce min")
		assert.True(t, seen[2], "Should produce max")
	})
}

// TestRandomFloat verifies the half-open unit interval contract
func TestRandomFloat(t *testing.T) {
	for i := 0; i < 1000; i++ {
		f := RandomFloat()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}
