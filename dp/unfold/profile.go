package unfold

import (
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-polar/dp/medfilt"
)

// smoothedGradient fills grad with the central-difference gradient of the
// median-smoothed beam. smooth is scratch of the same length. The end gates
// use one-sided differences; missing samples propagate as NaN.
func smoothedGradient(grad, smooth, beam []float64) {
	// smoothKernel is a compile-time constant, the error path is unreachable.
	_ = medfilt.Into(smooth, beam, smoothKernel)

	n := len(beam)
	if n < 2 {
		for i := range grad {
			grad[i] = 0
		}
		return
	}
	grad[0] = smooth[1] - smooth[0]
	for i := 1; i < n-1; i++ {
		grad[i] = (smooth[i+1] - smooth[i-1]) / 2
	}
	grad[n-1] = smooth[n-1] - smooth[n-2]
}

// rollingStd fills std with the population standard deviation over the
// dispersion window starting at each gate. Windows that would reach the
// final gate are not evaluated and stay zero; a window containing NaN
// yields NaN.
func rollingStd(std, beam []float64) {
	n := len(beam)
	for i := range std {
		std[i] = 0
	}
	for r := 0; r+dispersionWindow < n; r++ {
		std[r] = stat.PopStdDev(beam[r:r+dispersionWindow], nil)
	}
}
