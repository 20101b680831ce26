// Package render paints a flip world onto a raster canvas: the mesh first,
// then the shadow triangles of the flips in flight on top.
package render

import (
	"image"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/edgeflip/flip"
	"github.com/osuushi/edgeflip/geom"
	"github.com/osuushi/edgeflip/mesh"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

type Renderer struct {
	Width, Height int
	// Background is a hex color. Empty leaves the canvas transparent.
	Background string
	// EdgeWidth is the width of the white outline around every triangle.
	EdgeWidth float64
	// Labels writes each triangle's index at its centroid.
	Labels bool
	// Paths draws the track of every flip in flight along with its end points.
	Paths bool
}

func New(width, height int) *Renderer {
	return &Renderer{Width: width, Height: height, EdgeWidth: 0.5}
}

// Frame draws the world as it stands after its last tick.
func (r *Renderer) Frame(w *flip.World) image.Image {
	c := gg.NewContext(r.Width, r.Height)
	if r.Background != "" {
		c.SetHexColor(r.Background)
		c.Clear()
	}
	r.DrawMesh(c, w.Mesh())
	r.DrawShadows(c, w.Overlay())
	return c.Image()
}

func (r *Renderer) DrawMesh(c *gg.Context, m *mesh.Mesh) {
	for i, tri := range m.Triangles {
		r.drawTriangle(c, m.Triangle(i), tri.Color)
	}
	if r.Labels {
		c.SetFontFace(basicfont.Face7x13)
		c.SetRGB(0, 0, 0)
		for i := range m.Triangles {
			center := m.Triangle(i).Centroid()
			c.DrawStringAnchored(strconv.Itoa(i), center.X, center.Y, 0.5, 0.5)
		}
	}
}

func (r *Renderer) DrawShadows(c *gg.Context, shadows []flip.Shadow) {
	for _, shadow := range shadows {
		r.drawTriangle(c, shadow.Triangle, shadow.Color)
		if r.Paths {
			DrawPath(c, shadow.Path, r.Width)
			DrawVertex(c, shadow.Triangle.C, 2)
		}
	}
}

func (r *Renderer) drawTriangle(c *gg.Context, t geom.Triangle, fill colorful.Color) {
	c.MoveTo(t.A.X, t.A.Y)
	c.LineTo(t.B.X, t.B.Y)
	c.LineTo(t.C.X, t.C.Y)
	c.ClosePath()
	c.SetColor(fill)
	if r.EdgeWidth <= 0 {
		c.Fill()
		return
	}
	c.FillPreserve()
	c.SetLineWidth(r.EdgeWidth)
	c.SetColor(color.White)
	c.Stroke()
}

// DrawPath strokes a flip's track in black: the whole circle, or the line
// across the canvas.
func DrawPath(c *gg.Context, path geom.Path, width int) {
	switch p := path.(type) {
	case geom.CircularPath:
		c.DrawCircle(p.Circle.H, p.Circle.K, p.Circle.R)
	case geom.LinearPath:
		line := p.Line
		if line.Vertical {
			c.DrawLine(line.X, 0, line.X, float64(width))
		} else {
			y0, _ := line.YAt(0)
			y1, _ := line.YAt(float64(width))
			c.DrawLine(0, y0, float64(width), y1)
		}
	default:
		return
	}
	c.SetLineWidth(1)
	c.SetRGB(0, 0, 0)
	c.Stroke()
}

func DrawVertex(c *gg.Context, p geom.Point, radius float64) {
	c.DrawCircle(p.X, p.Y, math.Max(radius, 1))
	c.SetRGB(0, 0, 0)
	c.Fill()
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	return errors.Wrapf(gg.SavePNG(path, img), "saving frame to %s", path)
}

// Preview prints a saved frame inline for terminals that speak the iTerm
// image protocol.
func Preview(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
