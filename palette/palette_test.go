package palette

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	require.Len(t, Default, 26)
	assert.Equal(t, "#f79945", Default[0].Hex())
	assert.Equal(t, "#a6fcef", Default[len(Default)-1].Hex())
}

func TestParse(t *testing.T) {
	p, err := Parse("#000000", "#ffffff")
	require.NoError(t, err)
	assert.Len(t, p, 2)

	_, err = Parse("#000000", "orange")
	assert.Error(t, err)

	_, err = Parse()
	assert.Error(t, err)
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := map[string]struct{}{}
	for i := 0; i < 500; i++ {
		c := Default.Random(rng)
		assert.True(t, Default.Contains(c))
		seen[c.Hex()] = struct{}{}
	}
	// Five hundred draws over 26 colors hit most of them
	assert.Greater(t, len(seen), 20)

	// Same seed, same sequence
	a := rand.New(rand.NewSource(9))
	b := rand.New(rand.NewSource(9))
	for i := 0; i < 10; i++ {
		assert.Equal(t, Default.Random(a), Default.Random(b))
	}
}
