package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/stablematch/experiment"
	"github.com/katalvlaran/stablematch/market"
	"github.com/katalvlaran/stablematch/satisfaction"
	"github.com/katalvlaran/stablematch/stability"
)

// Palette.
var (
	colorAccent  = lipgloss.Color("#20B9B4")
	colorMuted   = lipgloss.Color("#2C4A54")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorError   = lipgloss.Color("#E74C3C")
	colorBars    = [2]lipgloss.Color{"#1D9EA3", "#F4D03F"}
)

// Printer writes reports to one writer. It is not safe for concurrent use.
type Printer struct {
	w      io.Writer
	border lipgloss.Border
	bar    string

	title   lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	bars    [2]lipgloss.Style
}

// NewPrinter returns a Printer for w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	p := &Printer{
		w:       w,
		border:  lipgloss.ASCIIBorder(),
		bar:     "#",
		title:   r.NewStyle().Bold(true).Foreground(colorAccent),
		header:  r.NewStyle().Bold(true).Padding(0, 1),
		cell:    r.NewStyle().Padding(0, 1),
		muted:   r.NewStyle().Foreground(colorMuted),
		success: r.NewStyle().Foreground(colorSuccess),
		failure: r.NewStyle().Foreground(colorError).Bold(true),
	}
	for i, c := range colorBars {
		p.bars[i] = r.NewStyle().Foreground(c)
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		p.border = lipgloss.RoundedBorder()
		p.bar = "█"
	}

	return p
}

func (p *Printer) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, format, args...)

	return err
}

// table renders headers and rows with the printer's border, numbers right-aligned.
func (p *Printer) table(headers []string, rows [][]string) string {
	return table.New().
		Border(p.border).
		BorderStyle(p.muted).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.header
			}
			if col > 0 {
				return p.cell.Align(lipgloss.Right)
			}
			return p.cell
		}).
		String()
}

// Title prints a section heading.
func (p *Printer) Title(text string) error {
	return p.printf("\n%s\n", p.title.Render(text))
}

// Matching prints one row per pair with the 1-based rank each partner gives
// the other.
func (p *Printer) Matching(m *market.Market, mt *market.Matching) error {
	pIdx, rIdx := m.Index(market.Proposers), m.Index(market.Receivers)
	rows := make([][]string, 0, mt.Size())
	for _, pair := range mt.Pairs() {
		rows = append(rows, []string{
			m.ID(market.Proposers, pair.Proposer),
			m.ID(market.Receivers, pair.Receiver),
			strconv.Itoa(pIdx.Rank(pair.Proposer, pair.Receiver) + 1),
			strconv.Itoa(rIdx.Rank(pair.Receiver, pair.Proposer) + 1),
		})
	}

	return p.printf("%s\n", p.table([]string{"Proposer", "Receiver", "Proposer's rank", "Receiver's rank"}, rows))
}

// Analysis prints the per-group metrics side by side, then the aggregates.
func (p *Printer) Analysis(rep *satisfaction.Report) error {
	g := [2]satisfaction.GroupStats{rep.Proposers, rep.Receivers}
	row := func(name string, get func(satisfaction.GroupStats) string) []string {
		return []string{name, get(g[0]), get(g[1])}
	}
	rows := [][]string{
		row("Satisfaction score", func(s satisfaction.GroupStats) string { return fmt.Sprintf("%.1f", s.Score) }),
		row("Average rank", func(s satisfaction.GroupStats) string { return fmt.Sprintf("%.2f", s.AvgRank) }),
		row("Top-1 choice", func(s satisfaction.GroupStats) string { return pct(s.Top1Pct) }),
		row("Top-3 choice", func(s satisfaction.GroupStats) string { return pct(s.Top3Pct) }),
	}
	if err := p.printf("%s\n", p.table([]string{"Metric", "Proposers", "Receivers"}, rows)); err != nil {
		return err
	}

	return p.printf("Egalitarian cost: %d   Fairness gap: %.1f\n", rep.EgalitarianCost, rep.FairnessGap)
}

// Stability prints a one-line verdict followed by any blocking pairs.
func (p *Printer) Stability(m *market.Market, rep *stability.Report) error {
	if rep.Stable {
		return p.printf("%s\n", p.success.Render("Stable: no blocking pairs"))
	}
	if err := p.printf("%s\n", p.failure.Render(fmt.Sprintf("Unstable: %d blocking pairs", len(rep.BlockingPairs)))); err != nil {
		return err
	}
	for _, ids := range rep.IDs(m) {
		if err := p.printf("  %s ⇄ %s\n", ids[0], ids[1]); err != nil {
			return err
		}
	}

	return nil
}

// Trial prints both proposing scenarios of one market and the score chart.
func (p *Printer) Trial(t *experiment.Trial) error {
	for _, out := range t.Outcomes {
		if err := p.Title(fmt.Sprintf("%s propose (%d proposals)", capitalize(out.Proposing.String()), out.Proposals)); err != nil {
			return err
		}
		if err := p.Stability(t.Market, out.Stability); err != nil {
			return err
		}
		if err := p.Analysis(out.Analysis); err != nil {
			return err
		}
	}

	return p.Chart(t)
}

// Summary prints mean ± standard deviation of every metric across trials,
// one column per proposing scenario.
func (p *Printer) Summary(res *experiment.Result) error {
	s := res.Summaries
	ms := func(get func(*satisfaction.Summary) satisfaction.Stat, format string) []string {
		out := make([]string, 0, 2)
		for _, sum := range s {
			st := get(sum)
			out = append(out, fmt.Sprintf(format+" ± "+format, st.Mean, st.StdDev))
		}
		return out
	}
	row := func(name string, cells []string) []string {
		return append([]string{name}, cells...)
	}
	rows := [][]string{
		row("Proposers score", ms(func(x *satisfaction.Summary) satisfaction.Stat { return x.Proposers.Score }, "%.1f")),
		row("Receivers score", ms(func(x *satisfaction.Summary) satisfaction.Stat { return x.Receivers.Score }, "%.1f")),
		row("Proposers avg rank", ms(func(x *satisfaction.Summary) satisfaction.Stat { return x.Proposers.AvgRank }, "%.2f")),
		row("Receivers avg rank", ms(func(x *satisfaction.Summary) satisfaction.Stat { return x.Receivers.AvgRank }, "%.2f")),
		row("Proposers top-1 %", ms(func(x *satisfaction.Summary) satisfaction.Stat { return x.Proposers.Top1Pct }, "%.1f")),
		row("Receivers top-1 %", ms(func(x *satisfaction.Summary) satisfaction.Stat { return x.Receivers.Top1Pct }, "%.1f")),
		row("Egalitarian cost", ms(func(x *satisfaction.Summary) satisfaction.Stat { return x.EgalitarianCost }, "%.1f")),
		row("Fairness gap", ms(func(x *satisfaction.Summary) satisfaction.Stat { return x.FairnessGap }, "%.1f")),
	}

	if err := p.Title(fmt.Sprintf("Summary of %d runs, n=%d", res.Config.Runs, res.Config.Size)); err != nil {
		return err
	}
	if err := p.printf("%s\n", p.muted.Render("run "+res.ID.String())); err != nil {
		return err
	}

	return p.printf("%s\n", p.table([]string{"Metric", "Proposers propose", "Receivers propose"}, rows))
}

// Matchings prints a numbered list of matchings, as produced by
// stability.Enumerate.
func (p *Printer) Matchings(m *market.Market, all []*market.Matching) error {
	if err := p.Title(fmt.Sprintf("%d stable matchings", len(all))); err != nil {
		return err
	}
	for i, mt := range all {
		if err := p.printf("#%d\n", i+1); err != nil {
			return err
		}
		if err := p.Matching(m, mt); err != nil {
			return err
		}
	}

	return nil
}

func pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return string(s[0]-'a'+'A') + s[1:]
}
