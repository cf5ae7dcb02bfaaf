package gasadjuster

import "math"

const (
	// DefaultGasPriceSamplesAmount is how many decided prices are gathered
	// before the price limit is rescaled.
	DefaultGasPriceSamplesAmount = 10
	// DefaultLimitScaleFactor gives the rescaled limit 50% of headroom
	// above the observed average.
	DefaultLimitScaleFactor = 1.5

	// Stuck transactions are resubmitted with a 15% price bump,
	// computed as an integer multiply followed by a truncating divide.
	bumpPercentNumerator   = 115
	bumpPercentDenominator = 100
)

// scaleFactorToPercent converts the configured float scale factor into an
// integer percentage once, so that all price scaling is done with integer
// multiply-then-divide and never with float arithmetic on the price itself.
func scaleFactorToPercent(scaleFactor float64) int64 {
	return int64(math.Round(scaleFactor * 100))
}
