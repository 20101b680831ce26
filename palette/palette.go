// Package palette holds the colors triangles are painted with.
package palette

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Warm oranges running into a few pale blues.
var defaultHex = []string{
	"#F79945", "#F59541", "#F4913E", "#F28D3B", "#F18938", "#EF8635",
	"#EE8232", "#ED7E2E", "#EB7A2B", "#EA7628", "#E87325", "#E76F22", "#E56B1F",
	"#E4671B", "#E36318", "#E16015", "#E05C12", "#DE580F", "#DD540C", "#DC5109",
	"#6ED8FC", "#79DFF9", "#85E7F6", "#91EEF3", "#9DF6F1", "#A6FCEF",
}

type Palette []colorful.Color

// Default is the built in orange and blue palette.
var Default = mustParse(defaultHex)

// Parse builds a palette from hex strings such as "#F79945".
func Parse(hexes ...string) (Palette, error) {
	if len(hexes) == 0 {
		return nil, errors.New("palette needs at least one color")
	}
	p := make(Palette, len(hexes))
	for i, hex := range hexes {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, errors.Wrapf(err, "color %d", i)
		}
		p[i] = c
	}
	return p, nil
}

func mustParse(hexes []string) Palette {
	p, err := Parse(hexes...)
	if err != nil {
		panic(err)
	}
	return p
}

// Random picks a color uniformly.
func (p Palette) Random(rng *rand.Rand) colorful.Color {
	return p[rng.Intn(len(p))]
}

func (p Palette) Contains(c colorful.Color) bool {
	for _, other := range p {
		if other == c {
			return true
		}
	}
	return false
}
