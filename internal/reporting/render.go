package reporting

import (
	"bytes"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// RenderSVG draws one chart spec as a standalone SVG document. SVG keeps the
// final report viewable without any script assets.
func RenderSVG(spec ChartSpec, width, height vg.Length) (string, error) {
	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel

	var err error
	switch spec.Kind {
	case KindLine:
		err = addLines(p, spec)
	case KindBar, KindGroupedBar:
		err = addBars(p, spec)
	case KindStackedBar:
		err = addStackedBars(p, spec)
	case KindScatter:
		err = addScatter(p, spec)
	default:
		err = fmt.Errorf("unknown chart kind %d", spec.Kind)
	}
	if err != nil {
		return "", fmt.Errorf("chart %s: %w", spec.ID, err)
	}

	var buf bytes.Buffer
	wt, err := p.WriterTo(width, height, "svg")
	if err != nil {
		return "", fmt.Errorf("chart %s: %w", spec.ID, err)
	}
	if _, err := wt.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("chart %s: %w", spec.ID, err)
	}
	return buf.String(), nil
}

func addLines(p *plot.Plot, spec ChartSpec) error {
	for i, s := range spec.Series {
		line, err := plotter.NewLine(seriesXYs(s))
		if err != nil {
			return err
		}
		line.LineStyle.Color = plotutil.Color(i)
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}
	p.Legend.Top = true
	return nil
}

func addBars(p *plot.Plot, spec ChartSpec) error {
	n := len(spec.Series)
	if n == 0 {
		return fmt.Errorf("no series")
	}

	barWidth := vg.Points(16) / vg.Length(n)
	for i, s := range spec.Series {
		bars, err := plotter.NewBarChart(plotter.Values(s.Ys), barWidth)
		if err != nil {
			return err
		}
		bars.LineStyle.Width = 0
		bars.Color = plotutil.Color(i)
		bars.Offset = vg.Length(float64(i)-float64(n-1)/2) * barWidth
		p.Add(bars)
		if n > 1 {
			p.Legend.Add(s.Name, bars)
		}
	}
	p.Legend.Top = true
	nominalX(p, spec.XNames)
	return nil
}

func addStackedBars(p *plot.Plot, spec ChartSpec) error {
	var prev *plotter.BarChart
	for i, s := range spec.Series {
		bars, err := plotter.NewBarChart(plotter.Values(s.Ys), vg.Points(16))
		if err != nil {
			return err
		}
		bars.LineStyle.Width = 0
		bars.Color = plotutil.Color(i)
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(s.Name, bars)
		prev = bars
	}
	p.Legend.Top = true
	nominalX(p, spec.XNames)
	return nil
}

func addScatter(p *plot.Plot, spec ChartSpec) error {
	for i, s := range spec.Series {
		sc, err := plotter.NewScatter(seriesXYs(s))
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = plotutil.Color(i)
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)

		if len(s.Labels) == len(s.Ys) {
			labels, err := plotter.NewLabels(plotter.XYLabels{XYs: seriesXYs(s), Labels: s.Labels})
			if err != nil {
				return err
			}
			p.Add(labels)
		}
	}
	return nil
}

// nominalX replaces the numeric X axis with sample names, angled so long ids
// stay readable.
func nominalX(p *plot.Plot, names []string) {
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
}

func seriesXYs(s Series) plotter.XYs {
	xys := make(plotter.XYs, len(s.Ys))
	for i := range s.Ys {
		if len(s.Xs) == len(s.Ys) {
			xys[i].X = s.Xs[i]
		} else {
			xys[i].X = float64(i)
		}
		xys[i].Y = s.Ys[i]
	}
	return xys
}
