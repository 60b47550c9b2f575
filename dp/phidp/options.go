package phidp

import "github.com/cwbudde/algo-polar/dp/unfold"

// Option configures the PhiDP reconstruction pipeline.
type Option func(*config)

type config struct {
	despeckleWidth int
	fillMargin     int
	unfoldWidth    int
	filterWidth    int
	inPlace        bool
	workers        int
	unfolder       unfold.Unfolder
}

func defaultConfig() config {
	return config{
		despeckleWidth: 3,
		fillMargin:     3,
		unfoldWidth:    5,
		filterWidth:    5,
		workers:        1,
	}
}

// WithDespeckleWidth sets the despeckle window width (3 or 5).
func WithDespeckleWidth(n int) Option {
	return func(c *config) { c.despeckleWidth = n }
}

// WithFillMargin sets the number of valid gates used for the one-sided
// margin medians of the gap filler.
func WithFillMargin(n int) Option {
	return func(c *config) { c.fillMargin = n }
}

// WithUnfoldWidth sets the analysis window width of the phase unfolder.
func WithUnfoldWidth(n int) Option {
	return func(c *config) { c.unfoldWidth = n }
}

// WithFilterWidth sets the kernel length of the final median smoothing
// (positive odd).
func WithFilterWidth(n int) Option {
	return func(c *config) { c.filterWidth = n }
}

// WithInPlace mutates the input scan instead of working on a copy. The
// default is to leave the input untouched.
func WithInPlace() Option {
	return func(c *config) { c.inPlace = true }
}

// WithWorkers bounds the number of concurrently processed beams for the
// beam-parallel stages. Values <= 1 mean serial operation.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithUnfolder selects the phase-unfolding strategy. The default is
// [unfold.Fast] with the pipeline worker count.
func WithUnfolder(u unfold.Unfolder) Option {
	return func(c *config) { c.unfolder = u }
}
