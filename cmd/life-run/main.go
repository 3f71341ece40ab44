package main

import (
	"flag"
	"fmt"
	"hash/fnv"
	"log"
	"os"
	"strings"

	"pixlife/internal/core"
	"pixlife/internal/sims/life"

	"github.com/cheggaaa/pb/v3"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// frameDigest is a presenter that fingerprints every frame it receives.
type frameDigest struct {
	frames int
	bytes  int
	last   uint64
}

func (d *frameDigest) Present(pix []byte) {
	h := fnv.New64a()
	h.Write(pix)
	d.frames++
	d.bytes = len(pix)
	d.last = h.Sum64()
}

func main() {
	steps := flag.Int("steps", 500, "generations to simulate")
	tps := flag.Int("tps", 0, "generations per second; 0 runs unthrottled")
	paint := flag.Bool("paint", true, "render a frame after every generation")
	quiet := flag.Bool("quiet", false, "hide the progress bar")
	var overrides kvList
	flag.Var(&overrides, "set", "grid setting in key=value form: w, h, density, seed (repeatable)")
	flag.Parse()

	settings := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("malformed -set %q, expected key=value", kv)
		}
		settings[parts[0]] = parts[1]
	}
	cfg := life.FromMap(settings)

	grid, err := life.NewWithConfig(cfg)
	if err != nil {
		log.Fatalf("create grid: %v", err)
	}

	var pacer *core.FixedStep
	if *tps > 0 {
		pacer = core.NewFixedStep(*tps)
	}

	fmt.Printf("Running %dx%d grid (density %g, seed %d) for %d generations\n",
		cfg.Width, cfg.Height, cfg.Density, cfg.Seed, *steps)

	var bar *pb.ProgressBar
	if !*quiet {
		bar = pb.New(*steps)
		bar.SetWriter(os.Stderr)
		bar.Start()
	}

	digest := &frameDigest{}
	initial := grid.Population()
	peak := initial
	for i := 0; i < *steps; i++ {
		if pacer != nil {
			pacer.Wait()
		}
		grid.Tick()
		if *paint {
			grid.PaintState(digest)
		}
		if p := grid.Population(); p > peak {
			peak = p
		}
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	fmt.Printf("generation %d: population %d (initial %d, peak %d)\n",
		grid.Generation(), grid.Population(), initial, peak)
	if digest.frames > 0 {
		fmt.Printf("frames %d × %d bytes, last frame fnv64a %016x\n", digest.frames, digest.bytes, digest.last)
	}
}
