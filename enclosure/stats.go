package enclosure

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// PrecisionStats summarizes how wide the intervals of a set of enclosures
// have grown: distribution of the widths Hi-Lo, and of the bits of
// precision retained relative to the nominal value's magnitude.
type PrecisionStats struct {
	MinWidth, MaxWidth, MeanWidth, MedianWidth, StdWidth float64

	// Precision is -log2(width / max(|Val|, 1)); NaN, infinite and
	// zero-width (exact) entries are excluded from its distribution.
	MinPrecision, MaxPrecision, MeanPrecision, MedianPrecision float64
}

// NewPrecisionStats computes width and precision statistics over values.
func NewPrecisionStats(values []Enclosure) PrecisionStats {
	widths := make([]float64, 0, len(values))
	precisions := make([]float64, 0, len(values))

	for _, f := range values {
		w := f.Width()
		widths = append(widths, w)
		if w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w) {
			scale := math.Max(math.Abs(f.Val), 1)
			precisions = append(precisions, -math.Log2(w/scale))
		}
	}

	var p PrecisionStats
	p.MinWidth, _ = stats.Min(widths)
	p.MaxWidth, _ = stats.Max(widths)
	p.MeanWidth, _ = stats.Mean(widths)
	p.MedianWidth, _ = stats.Median(widths)
	p.StdWidth, _ = stats.StandardDeviation(widths)
	p.MinPrecision, _ = stats.Min(precisions)
	p.MaxPrecision, _ = stats.Max(precisions)
	p.MeanPrecision, _ = stats.Mean(precisions)
	p.MedianPrecision, _ = stats.Median(precisions)
	return p
}

func (p PrecisionStats) String() string {
	return fmt.Sprintf("width: min=%.3e max=%.3e mean=%.3e median=%.3e std=%.3e | precision bits: min=%.2f max=%.2f mean=%.2f median=%.2f",
		p.MinWidth, p.MaxWidth, p.MeanWidth, p.MedianWidth, p.StdWidth,
		p.MinPrecision, p.MaxPrecision, p.MeanPrecision, p.MedianPrecision)
}
