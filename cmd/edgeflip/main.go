// Command edgeflip runs the edge flip animation headless and writes frames as
// PNG files. Without --input the points are scattered at random over the
// canvas; otherwise they are read from an SVG file (circle centers and polygon
// corners) or a text file of "x y" lines.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/osuushi/edgeflip"
	"github.com/osuushi/edgeflip/flip"
	"github.com/osuushi/edgeflip/render"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

type config struct {
	width, height int
	points        int
	seed          int64
	frames        int
	every         int
	out           string
	input         string
	flipChance    float64
	preview       bool
	labels        bool
	paths         bool
}

func main() {
	app := kingpin.New("edgeflip", "Animate edge flips over a random triangulation.")
	var cfg config
	app.Flag("width", "Canvas width in pixels.").Default("800").IntVar(&cfg.width)
	app.Flag("height", "Canvas height in pixels.").Default("600").IntVar(&cfg.height)
	app.Flag("points", "Number of random points to scatter.").Default("120").IntVar(&cfg.points)
	app.Flag("seed", "Random seed. Zero picks one from the clock.").Default("0").Int64Var(&cfg.seed)
	app.Flag("frames", "Number of ticks to run.").Default("600").IntVar(&cfg.frames)
	app.Flag("every", "Write every Nth frame.").Default("10").IntVar(&cfg.every)
	app.Flag("out", "Directory frames are written to.").Default("frames").StringVar(&cfg.out)
	app.Flag("input", "SVG or text file of points to use instead of random ones.").ExistingFileVar(&cfg.input)
	app.Flag("flip-chance", "Probability that a tick starts a flip.").Default(fmt.Sprint(flip.DefaultFlipChance)).Float64Var(&cfg.flipChance)
	app.Flag("preview", "Show each written frame inline in the terminal.").BoolVar(&cfg.preview)
	app.Flag("labels", "Label triangles with their index.").BoolVar(&cfg.labels)
	app.Flag("paths", "Draw the path of every flip in flight.").BoolVar(&cfg.paths)
	verbose := app.Flag("verbose", "Log every flip.").Short('v').Bool()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	var logger *zap.Logger
	var err error
	if *verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	kingpin.FatalIfError(err, "creating logger")
	defer logger.Sync() //nolint:errcheck
	flip.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	kingpin.FatalIfError(run(ctx, cfg, logger), "edgeflip")
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.every < 1 {
		return errors.Errorf("--every must be positive, got %d", cfg.every)
	}
	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	points, err := loadPoints(cfg, rng)
	if err != nil {
		return err
	}
	world, err := edgeflip.New(points, rng, flip.WithFlipChance(cfg.flipChance))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.out, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}
	logger.Info("starting",
		zap.Int64("seed", seed),
		zap.Int("points", len(points)),
		zap.Int("triangles", len(world.Mesh().Triangles)),
	)

	renderer := render.New(cfg.width, cfg.height)
	renderer.Labels = cfg.labels
	renderer.Paths = cfg.paths

	written := 0
	for frame := 0; frame < cfg.frames && !world.Settled(); frame++ {
		select {
		case <-ctx.Done():
			logger.Info("interrupted", zap.Int("frame", frame))
			world.Settle()
			continue
		default:
		}

		world.Advance()
		if frame%cfg.every != 0 {
			continue
		}
		path := filepath.Join(cfg.out, fmt.Sprintf("frame-%05d.png", frame))
		if err := render.SavePNG(path, renderer.Frame(world)); err != nil {
			return err
		}
		written++
		if cfg.preview {
			render.Preview(path, os.Stdout)
		}
	}
	logger.Info("done", zap.Int("ticks", world.Ticks()), zap.Int("written", written))
	return nil
}

func loadPoints(cfg config, rng *rand.Rand) ([]edgeflip.Point, error) {
	if cfg.input == "" {
		return edgeflip.RandomPoints(rng, cfg.points, float64(cfg.width), float64(cfg.height)), nil
	}
	file, err := os.Open(cfg.input)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	defer file.Close()
	if strings.EqualFold(filepath.Ext(cfg.input), ".svg") {
		return edgeflip.LoadPoints(file)
	}
	return edgeflip.ReadPoints(file)
}
