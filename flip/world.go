package flip

import (
	"math/rand"

	"github.com/osuushi/edgeflip/dbg"
	"github.com/osuushi/edgeflip/mesh"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// World owns a mesh and the flips animating on it. It is driven one tick at a
// time by a host calling Advance, and is not safe for concurrent use.
type World struct {
	mesh     *mesh.Mesh
	rng      *rand.Rand
	resolver *Resolver
	opts     options

	active  []*Flip
	overlay []Shadow
	ticks   int
	settled bool
}

// NewWorld paints every triangle of m a random palette color and returns a
// world with no flips in flight. All randomness comes from rng, so a seeded
// source replays the same animation.
func NewWorld(m *mesh.Mesh, rng *rand.Rand, opts ...Option) *World {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	for i := range m.Triangles {
		m.Triangles[i].Color = o.palette.Random(rng)
	}
	return &World{
		mesh:     m,
		rng:      rng,
		resolver: NewResolver(m, rng, o.palette),
		opts:     o,
	}
}

func (w *World) Mesh() *mesh.Mesh {
	return w.mesh
}

// Active returns the flips currently in flight.
func (w *World) Active() []*Flip {
	return append([]*Flip(nil), w.active...)
}

// Overlay returns the shadow triangles of every flip the last tick touched,
// including flips that converged during it and are no longer active.
func (w *World) Overlay() []Shadow {
	return append([]Shadow(nil), w.overlay...)
}

func (w *World) Ticks() int {
	return w.ticks
}

// Settle tells the host to stop calling Advance.
func (w *World) Settle() {
	w.settled = true
}

func (w *World) Settled() bool {
	return w.settled
}

// Advance runs one tick. With the configured chance a new flip starts, then
// every flip in flight either moves one increment or, if it has arrived,
// commits its color to its destination and is dropped.
func (w *World) Advance() {
	w.ticks++
	if w.rng.Float64() < w.opts.flipChance {
		w.startWithRetries()
	}
	w.step()
}

// Start begins a flip from triangle from to its edge-adjacent triangle to.
func (w *World) Start(from, to int) (*Flip, error) {
	f, err := w.resolver.ResolvePair(from, to)
	if err != nil {
		return nil, err
	}
	w.begin(f)
	return f, nil
}

// StartRandom makes one attempt at a flip from a random triangle.
func (w *World) StartRandom() (*Flip, error) {
	if len(w.mesh.Triangles) == 0 {
		return nil, ErrEmptyMesh
	}
	f, err := w.resolver.Resolve(w.rng.Intn(len(w.mesh.Triangles)))
	if err != nil {
		return nil, err
	}
	w.begin(f)
	return f, nil
}

func (w *World) begin(f *Flip) {
	w.active = append(w.active, f)
	// Only name and dump when debug output is enabled
	if ce := Logger().Check(zap.DebugLevel, "flip started"); ce != nil {
		ce.Write(
			zap.Stringer("flip", f),
			zap.String("path", dbg.Dump(f.Path)),
			zap.Int("active", len(w.active)),
		)
	}
}

// A source without a usable neighbor is expected; try another one.
func (w *World) startWithRetries() {
	for attempt := 0; attempt < w.opts.maxAttempts; attempt++ {
		_, err := w.StartRandom()
		if err == nil {
			return
		}
		if !errors.Is(err, ErrNoAdjacent) && !errors.Is(err, ErrVerticalPath) {
			Logger().Warn("cannot start flip", zap.Error(err))
			return
		}
		Logger().Debug("flip rejected", zap.Error(err), zap.Int("attempt", attempt))
	}
}

// step is two-phase. First every flip in a snapshot of the active set either
// moves or is marked converged, and its shadow goes into the overlay. Then the
// converged flips commit and are removed in one pass.
func (w *World) step() {
	snapshot := append([]*Flip(nil), w.active...)
	overlay := make([]Shadow, 0, len(snapshot))
	for _, f := range snapshot {
		if f.Arrived() {
			f.converged = true
		} else {
			f.advance(w.opts.increment)
		}
		overlay = append(overlay, f.Shadow(w.mesh))
	}
	w.overlay = overlay

	kept := w.active[:0]
	for _, f := range w.active {
		if !f.converged {
			kept = append(kept, f)
			continue
		}
		w.mesh.Triangles[f.To].Color = f.Color
		if ce := Logger().Check(zap.DebugLevel, "flip committed"); ce != nil {
			ce.Write(
				zap.String("flip", f.DbgName()),
				zap.Int("steps", f.steps),
				zap.String("to", dbg.TriangleName(f.To)),
				zap.String("color", f.Color.Hex()),
			)
		}
	}
	// Drop references held past the new length
	for i := len(kept); i < len(w.active); i++ {
		w.active[i] = nil
	}
	w.active = kept
}
