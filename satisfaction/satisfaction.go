package satisfaction

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/stablematch/market"
)

// ErrNilInput is returned when the market or the matching is nil.
var ErrNilInput = errors.New("satisfaction: market and matching must be non-nil")

// top3Threshold is the exclusive rank bound of the Top3Pct metric.
const top3Threshold = 3

// GroupStats are the metrics of one group.
type GroupStats struct {
	AvgRank float64
	Score   float64
	Top1Pct float64
	Top3Pct float64
	RankSum int
}

// Report is the analysis of one matching.
type Report struct {
	Size            int
	Proposers       GroupStats
	Receivers       GroupStats
	EgalitarianCost int
	FairnessGap     float64
}

// Metric is one named value of a flattened Report.
type Metric struct {
	Name  string
	Value float64
}

// Analyze computes the Report of mt in m.
//
// Errors: ErrNilInput; market.ErrEmptyGroup for n == 0;
// market.ErrGroupSizeMismatch when mt and m differ in size.
//
// Complexity: O(n).
func Analyze(m *market.Market, mt *market.Matching) (*Report, error) {
	if m == nil || mt == nil {
		return nil, ErrNilInput
	}
	n := m.Size()
	if n == 0 {
		return nil, market.ErrEmptyGroup
	}
	if mt.Size() != n {
		return nil, fmt.Errorf("satisfaction: %w: matching of size %d, market of size %d",
			market.ErrGroupSizeMismatch, mt.Size(), n)
	}

	p := groupStats(ranksOf(m, mt, market.Proposers), n)
	r := groupStats(ranksOf(m, mt, market.Receivers), n)

	return &Report{
		Size:            n,
		Proposers:       p,
		Receivers:       r,
		EgalitarianCost: p.RankSum + r.RankSum,
		FairnessGap:     math.Abs(p.Score - r.Score),
	}, nil
}

// ranksOf returns, for every agent of side, the rank it gives its partner.
func ranksOf(m *market.Market, mt *market.Matching, side market.Side) []float64 {
	idx := m.Index(side)
	ranks := make([]float64, m.Size())
	for a := range ranks {
		ranks[a] = float64(idx.Rank(a, mt.Partner(side, a)))
	}

	return ranks
}

func groupStats(ranks []float64, n int) GroupStats {
	var (
		sum      int
		top1     int
		top3     int
		avg      = stat.Mean(ranks, nil)
		perAgent = float64(n)
	)
	for _, r := range ranks {
		sum += int(r)
		if r == 0 {
			top1++
		}
		if r < top3Threshold {
			top3++
		}
	}

	score := 100.0
	if n > 1 {
		score = 100 * (1 - avg/float64(n-1))
	}

	return GroupStats{
		AvgRank: avg,
		Score:   score,
		Top1Pct: float64(top1) / perAgent * 100,
		Top3Pct: float64(top3) / perAgent * 100,
		RankSum: sum,
	}
}

// Swap returns a copy of r with the proposer and receiver blocks exchanged;
// r is left untouched. Analyzing a transposed market and matching yields
// the swapped report of the original.
func (r *Report) Swap() *Report {
	out := *r
	out.Proposers, out.Receivers = r.Receivers, r.Proposers

	return &out
}

// Metrics flattens the report into eleven named values, in a fixed order.
func (r *Report) Metrics() []Metric {
	return []Metric{
		{Name: "size", Value: float64(r.Size)},
		{Name: "proposers.avg_rank", Value: r.Proposers.AvgRank},
		{Name: "proposers.top_1_pct", Value: r.Proposers.Top1Pct},
		{Name: "proposers.top_3_pct", Value: r.Proposers.Top3Pct},
		{Name: "proposers.satisfaction_score", Value: r.Proposers.Score},
		{Name: "receivers.avg_rank", Value: r.Receivers.AvgRank},
		{Name: "receivers.top_1_pct", Value: r.Receivers.Top1Pct},
		{Name: "receivers.top_3_pct", Value: r.Receivers.Top3Pct},
		{Name: "receivers.satisfaction_score", Value: r.Receivers.Score},
		{Name: "overall.egalitarian_cost", Value: float64(r.EgalitarianCost)},
		{Name: "overall.fairness_gap", Value: r.FairnessGap},
	}
}
