package satisfaction

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// ErrNoReports is returned when Summarize receives no reports.
var ErrNoReports = errors.New("satisfaction: no reports to summarize")

// Stat is the sample mean and standard deviation of one metric across runs.
// StdDev is 0 for a single run.
type Stat struct {
	Mean   float64
	StdDev float64
}

// GroupSummary aggregates GroupStats across runs.
type GroupSummary struct {
	AvgRank Stat
	Score   Stat
	Top1Pct Stat
	Top3Pct Stat
}

// Summary aggregates many Reports, typically one per random market.
type Summary struct {
	Runs            int
	Proposers       GroupSummary
	Receivers       GroupSummary
	EgalitarianCost Stat
	FairnessGap     Stat
}

// Summarize computes per-metric mean and standard deviation over reports.
// Nil entries are skipped; an empty or all-nil input returns ErrNoReports.
func Summarize(reports []*Report) (*Summary, error) {
	kept := make([]*Report, 0, len(reports))
	for _, r := range reports {
		if r != nil {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return nil, ErrNoReports
	}

	column := func(get func(*Report) float64) Stat {
		xs := make([]float64, len(kept))
		for i, r := range kept {
			xs[i] = get(r)
		}

		return describe(xs)
	}
	group := func(get func(*Report) GroupStats) GroupSummary {
		return GroupSummary{
			AvgRank: column(func(r *Report) float64 { return get(r).AvgRank }),
			Score:   column(func(r *Report) float64 { return get(r).Score }),
			Top1Pct: column(func(r *Report) float64 { return get(r).Top1Pct }),
			Top3Pct: column(func(r *Report) float64 { return get(r).Top3Pct }),
		}
	}

	return &Summary{
		Runs:            len(kept),
		Proposers:       group(func(r *Report) GroupStats { return r.Proposers }),
		Receivers:       group(func(r *Report) GroupStats { return r.Receivers }),
		EgalitarianCost: column(func(r *Report) float64 { return float64(r.EgalitarianCost) }),
		FairnessGap:     column(func(r *Report) float64 { return r.FairnessGap }),
	}, nil
}

// describe returns mean and unbiased standard deviation; a single sample has
// no spread.
func describe(xs []float64) Stat {
	if len(xs) == 1 {
		return Stat{Mean: xs[0]}
	}
	mean, std := stat.MeanStdDev(xs, nil)

	return Stat{Mean: mean, StdDev: std}
}
