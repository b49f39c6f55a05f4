package tsp_evolve

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ChartRequest describes one convergence chart over a finished set of
// runs. Mode picks how the R series fold into lines, Stat picks which
// per-generation figure each line tracks.
type ChartRequest struct {
	Results  []*RunResult
	Mode     PlotMode
	Stat     Statistic
	Instance string
	Config   *Config
	OutDir   string
}

// ParsePlotMode maps a CLI string onto the closed plot-mode set.
func ParsePlotMode(s string) (PlotMode, error) {
	switch s {
	case "average":
		return PlotAverage, nil
	case "best":
		return PlotBest, nil
	case "worst":
		return PlotWorst, nil
	case "range":
		return PlotRange, nil
	case "display-all":
		return PlotDisplayAll, nil
	}
	return 0, fmt.Errorf("%w: unknown plot mode %q", ErrConfiguration, s)
}

// ParseStatistic maps a CLI string onto the statistic set.
func ParseStatistic(s string) (Statistic, error) {
	switch s {
	case "best":
		return StatBest, nil
	case "worst":
		return StatWorst, nil
	case "average":
		return StatAverage, nil
	}
	return 0, fmt.Errorf("%w: unknown statistic %q", ErrConfiguration, s)
}

// RenderChart draws the requested convergence chart as a PNG in the
// output directory and returns the written path. The filename carries a
// timestamp and the instance name so repeated renders never clobber each
// other.
func RenderChart(req *ChartRequest) (string, error) {
	if len(req.Results) == 0 {
		return "", fmt.Errorf("%w: no run results to plot", ErrInputData)
	}
	if err := os.MkdirAll(req.OutDir, 0o755); err != nil {
		return "", fmt.Errorf("creating results dir: %w", err)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf(
		"TSP %s: %d runs, population %d, tournament %d, %s crossover, %s mutation (%s cost)",
		req.Instance, len(req.Results), req.Config.PopulationSize, req.Config.TournamentSize,
		req.Config.Crossover, req.Config.Mutation, req.Stat,
	)
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = fmt.Sprintf("%s cost", req.Stat)
	p.Legend.Top = true

	switch req.Mode {
	case PlotAverage:
		if err := addLine(p, AverageSeries(req.Results, req.Stat), "average of runs", 0); err != nil {
			return "", err
		}
	case PlotBest:
		if err := addLine(p, BestRunSeries(req.Results, req.Stat), "best run", 0); err != nil {
			return "", err
		}
	case PlotWorst:
		if err := addLine(p, WorstRunSeries(req.Results, req.Stat), "worst run", 0); err != nil {
			return "", err
		}
	case PlotRange:
		if err := addLine(p, WorstRunSeries(req.Results, req.Stat), "worst run", 0); err != nil {
			return "", err
		}
		if err := addLine(p, AverageSeries(req.Results, req.Stat), "average of runs", 1); err != nil {
			return "", err
		}
		if err := addLine(p, BestRunSeries(req.Results, req.Stat), "best run", 2); err != nil {
			return "", err
		}
	case PlotDisplayAll:
		for i, series := range AllSeries(req.Results, req.Stat) {
			if err := addLine(p, series, fmt.Sprintf("run %d", i+1), i); err != nil {
				return "", err
			}
		}
	default:
		return "", fmt.Errorf("%w: unknown plot mode %d", ErrConfiguration, req.Mode)
	}

	name := fmt.Sprintf("chart-%s-(%s).png", time.Now().UTC().Format("2006-01-02-15-04-05"), req.Instance)
	path := filepath.Join(req.OutDir, name)
	if err := p.Save(12*vg.Inch, 8*vg.Inch, path); err != nil {
		return "", fmt.Errorf("saving chart: %w", err)
	}
	return path, nil
}

func addLine(p *plot.Plot, series []float64, label string, color int) error {
	pts := make(plotter.XYs, len(series))
	for i, v := range series {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("building line %q: %w", label, err)
	}
	line.Color = plotutil.Color(color)
	line.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add(label, line)
	return nil
}
