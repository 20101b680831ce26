// An animated edge flipping package for Go.
//
// This package scatters points over a canvas, triangulates them, paints the
// triangles, and then animates flips: a triangle's far corner swings across a
// shared edge onto its neighbor, carrying its color along, until the moving
// corner lands on the neighbor's far corner.
//
// The world is driven one tick at a time. See cmd/edgeflip for a host that
// writes frames to disk.
package edgeflip

import (
	"bufio"
	"io"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/edgeflip/flip"
	"github.com/osuushi/edgeflip/geom"
	"github.com/osuushi/edgeflip/internal/delaunay"
	"github.com/osuushi/edgeflip/mesh"
	"github.com/pkg/errors"
)

type Point = geom.Point
type Triangle = geom.Triangle
type World = flip.World
type Option = flip.Option

// Margin shrinks the seed disc so that no point lands on the canvas border.
const Margin = 0.96875

var ErrNoPoints = errors.New("no points found")

// Triangulate points, build the mesh, and return a freshly painted world.
func New(points []Point, rng *rand.Rand, opts ...Option) (*World, error) {
	indices, err := delaunay.Triangulate(points)
	if err != nil {
		return nil, errors.Wrap(err, "triangulating")
	}
	m, err := mesh.Build(points, indices)
	if err != nil {
		return nil, errors.Wrap(err, "building mesh")
	}
	return flip.NewWorld(m, rng, opts...), nil
}

// RandomPoints scatters count points uniformly over the ellipse inscribed in a
// width by height canvas, pulled in by Margin and floored to whole pixels.
func RandomPoints(rng *rand.Rand, count int, width, height float64) []Point {
	points := make([]Point, count)
	for i := range points {
		var x, y float64
		for {
			x = rng.Float64() - 0.5
			y = rng.Float64() - 0.5
			if x*x+y*y <= 0.25 {
				break
			}
		}
		points[i] = Point{
			X: math.Floor((x*Margin + 0.5) * width),
			Y: math.Floor((y*Margin + 0.5) * height),
		}
	}
	return points
}

// LoadPoints reads the vertex set out of an SVG document: the center of every
// circle, and every corner of every polygon and polyline, in document order.
func LoadPoints(r io.Reader) ([]Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}
	var points []Point
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		switch el.Name {
		case "circle":
			x, err := parseCoordinate(el.Attributes["cx"])
			if err != nil {
				return errors.Wrap(err, "circle cx")
			}
			y, err := parseCoordinate(el.Attributes["cy"])
			if err != nil {
				return errors.Wrap(err, "circle cy")
			}
			points = append(points, Point{X: x, Y: y})
		case "polygon", "polyline":
			corners, err := parsePointList(el.Attributes["points"])
			if err != nil {
				return errors.Wrapf(err, "%s points", el.Name)
			}
			points = append(points, corners...)
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	return points, nil
}

// ReadPoints reads newline separated points in the form "x y". Blank lines
// and lines starting with # are skipped.
func ReadPoints(r io.Reader) ([]Point, error) {
	var points []Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	return points, nil
}

func parsePoint(line string) (Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := parseCoordinate(parts[0])
	if err != nil {
		return Point{}, err
	}
	y, err := parseCoordinate(parts[1])
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// SVG point lists separate pairs with whitespace and x from y with a comma,
// though either may appear in place of the other.
func parsePointList(list string) ([]Point, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", list)
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := parseCoordinate(fields[i])
		if err != nil {
			return nil, err
		}
		y, err := parseCoordinate(fields[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points, nil
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid coordinate %q", s)
	}
	return v, nil
}
