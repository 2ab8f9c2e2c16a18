package layout

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"

	"timelane/internal/config"
	"timelane/internal/timeline"
)

// DomainOptions controls domain inference. The strategy choice resolves two
// coexisting product behaviors: a window that slides with the latest bound,
// or a domain fitted around the full item range.
type DomainOptions struct {
	Strategy    config.DomainStrategy
	WindowYears float64
	PadYears    float64
}

// InferDomain computes the visible time-axis range from the item set. The
// upper bound is shared globally across all series: the latest of now, every
// instant or open item's begin, and every closed interval's end, plus the
// configured padding. The lower bound depends on the strategy.
//
// An empty item set is an error; layout never runs without items.
func InferDomain(items []timeline.TimeItem, now time.Time, opts DomainOptions) (start, end time.Time, err error) {
	if len(items) == 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("cannot infer a time domain from an empty item set")
	}

	upper := make([]float64, 0, len(items)+1)
	lower := make([]float64, 0, len(items))
	upper = append(upper, epochSeconds(now))
	for _, it := range items {
		lower = append(lower, epochSeconds(it.Begin))
		if it.Kind == timeline.KindInterval && !it.HasNoEnd() {
			upper = append(upper, epochSeconds(*it.End))
		} else {
			upper = append(upper, epochSeconds(it.Begin))
		}
	}

	end = shiftYears(timeFromEpochSeconds(floats.Max(upper)), opts.PadYears)

	switch opts.Strategy {
	case config.StrategyFit:
		start = shiftYears(timeFromEpochSeconds(floats.Min(lower)), -opts.PadYears)
	default: // trailing window
		start = shiftYears(end, -opts.WindowYears)
	}
	return start, end, nil
}
