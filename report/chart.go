package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/stablematch/experiment"
	"github.com/katalvlaran/stablematch/market"
)

// chartWidth is the bar length of a 100-point score.
const chartWidth = 40

// Chart prints a horizontal bar per group and scenario comparing
// satisfaction scores on the 0..100 scale.
func (p *Printer) Chart(t *experiment.Trial) error {
	if err := p.Title("Satisfaction scores"); err != nil {
		return err
	}

	var labels, bars []string
	for _, out := range t.Outcomes {
		for g, score := range [2]float64{out.Analysis.Proposers.Score, out.Analysis.Receivers.Score} {
			group := market.Side(g)
			labels = append(labels, fmt.Sprintf("%s | %s propose", group, out.Proposing))
			bars = append(bars, p.bars[g].Render(p.barOf(score))+fmt.Sprintf(" %.1f", score))
		}
	}
	block := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().PaddingRight(2).Render(strings.Join(labels, "\n")),
		strings.Join(bars, "\n"),
	)

	return p.printf("%s\n", block)
}

// barOf returns the bar for score, clamped to 0..chartWidth glyphs.
func (p *Printer) barOf(score float64) string {
	n := int(score/100*chartWidth + 0.5)
	n = max(0, min(chartWidth, n))

	return strings.Repeat(p.bar, n)
}
