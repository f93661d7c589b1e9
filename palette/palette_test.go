package palette_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/latticecad/kernel/palette"
)

func TestSequentialColorIsDeterministic(t *testing.T) {
	a := palette.SequentialColor(3)
	b := palette.SequentialColor(3)
	assert.Equal(t, a, b)
}

func TestSequentialColorVariesByIndex(t *testing.T) {
	a := palette.SequentialColor(0)
	b := palette.SequentialColor(1)
	assert.NotEqual(t, a, b)
}

func TestShimmeredStaysOpaque(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	base := palette.SequentialColor(0)
	shimmered := palette.Shimmered(base, 0.2, r)
	assert.Equal(t, base.A, shimmered.A)
}
