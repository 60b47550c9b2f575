// Command dpinfo runs a synthetic differential-phase scan through the
// reconstruction pipeline and prints per-stage field statistics.
//
// Usage:
//
//	dpinfo [flags]
//
// Examples:
//
//	dpinfo
//	dpinfo -beams 360 -gates 1000 -fold 600
//	dpinfo -unfolder reference -workers 1
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/cwbudde/algo-polar/dp/beamstats"
	"github.com/cwbudde/algo-polar/dp/kdp"
	"github.com/cwbudde/algo-polar/dp/phidp"
	"github.com/cwbudde/algo-polar/dp/scan"
	"github.com/cwbudde/algo-polar/dp/texture"
	"github.com/cwbudde/algo-polar/dp/unfold"
)

func main() {
	var (
		beams     = flag.Int("beams", 360, "number of beams (azimuth angles)")
		gates     = flag.Int("gates", 600, "number of range gates per beam")
		seed      = flag.Int64("seed", 1, "noise seed")
		fold      = flag.Int("fold", 400, "gate at which the synthetic phase folds by -360 (0 disables)")
		gapFrac   = flag.Float64("gaps", 0.1, "fraction of gates invalidated at random")
		workers   = flag.Int("workers", runtime.NumCPU(), "beam-parallel workers")
		unfolder  = flag.String("unfolder", "fast", "unfolding strategy: fast or reference")
		kdpWindow = flag.Int("kdp", kdp.DefaultWindow, "Kdp derivative window (odd number of gates)")
	)
	flag.Parse()
	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(2)
	}

	var strategy unfold.Unfolder
	switch *unfolder {
	case "fast":
		strategy = unfold.Fast{Workers: *workers}
	case "reference":
		strategy = unfold.Reference{}
	default:
		fmt.Fprintf(os.Stderr, "unknown unfolder %q (want fast or reference)\n", *unfolder)
		os.Exit(2)
	}

	raw, rho := synthesise(*beams, *gates, *seed, *fold, *gapFrac)

	corrected, err := phidp.ProcessRaw(raw, rho,
		phidp.WithWorkers(*workers),
		phidp.WithUnfolder(strategy),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	derived, err := kdp.FromPhidp(corrected, *kdpWindow)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	tex, err := texture.Compute(raw)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "field\tvalid\tmean\tstd\tmin\tmax")
	printRow(w, "raw phidp", raw)
	printRow(w, "corrected phidp", corrected)
	printRow(w, "kdp", derived)
	printRow(w, "texture(raw)", tex)
	w.Flush()
}

// synthesise builds a folded, noisy PhiDP field with random gaps plus a
// supporting correlation field.
func synthesise(beams, gates int, seed int64, fold int, gapFrac float64) (*scan.Scan, *scan.Scan) {
	rng := rand.New(rand.NewSource(seed))
	raw := scan.New(beams, gates)
	rho := scan.New(beams, gates)

	for b := range beams {
		phi := raw.Beam(b)
		cc := rho.Beam(b)
		slope := 0.3 + 0.2*rng.Float64()
		for r := range gates {
			phi[r] = slope*float64(r) + rng.Float64()*2 - 1
			if fold > 0 && r >= fold {
				phi[r] -= 360
			}
			if rng.Float64() < gapFrac {
				phi[r] = math.NaN()
			}
			cc[r] = 0.95 + 0.04*rng.Float64()
		}
	}
	return raw, rho
}

func printRow(w *tabwriter.Writer, name string, s *scan.Scan) {
	st := beamstats.Calculate(s.Data())
	fmt.Fprintf(w, "%s\t%.1f%%\t%.2f\t%.2f\t%.2f\t%.2f\n",
		name, 100*st.ValidFraction, st.Mean, st.PopStd, st.Min, st.Max)
}
