// Package charts renders deck statistics as interactive ECharts HTML.
package charts

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/lightdarktcg/companion/internal/catalog"
	"github.com/lightdarktcg/companion/internal/deck"
)

// ChartConfig holds configuration for charts.
type ChartConfig struct {
	Title    string // Chart title
	Subtitle string // Chart subtitle
	Width    string // Chart width (e.g., "900px")
	Height   string // Chart height (e.g., "500px")
	Theme    string // Chart theme
}

// DefaultChartConfig returns default chart configuration.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:  "900px",
		Height: "500px",
		Theme:  "dark",
	}
}

// typeOrder fixes the display order of card types in charts.
var typeOrder = []catalog.CardType{
	catalog.TypeHero,
	catalog.TypeCombatant,
	catalog.TypeEquipment,
	catalog.TypeEffect,
}

// RenderCostCurve writes an HTML bar chart of the deck's CT distribution.
// Every CT value from 0 through the deck's maximum gets a bar so gaps in
// the curve stay visible.
func RenderCostCurve(stats deck.Stats, config ChartConfig, w io.Writer) error {
	bar := charts.NewBar()

	if config.Title == "" {
		config.Title = "Cost Curve (CT)"
	}

	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)

	maxCT := 0
	for ct := range stats.CostDistribution {
		if ct > maxCT {
			maxCT = ct
		}
	}

	labels := make([]string, 0, maxCT+1)
	values := make([]opts.BarData, 0, maxCT+1)
	for ct := 0; ct <= maxCT; ct++ {
		labels = append(labels, fmt.Sprintf("%d", ct))
		values = append(values, opts.BarData{Value: stats.CostDistribution[ct]})
	}

	bar.SetXAxis(labels).
		AddSeries("Cards", values).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show:     opts.Bool(true),
				Position: "top",
			}),
		)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render cost curve: %w", err)
	}
	return nil
}

// RenderTypeDistribution writes an HTML pie chart of the deck's card type
// counts. Types absent from the deck are omitted.
func RenderTypeDistribution(stats deck.Stats, config ChartConfig, w io.Writer) error {
	pie := charts.NewPie()

	if config.Title == "" {
		config.Title = "Type Distribution"
	}

	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)

	var items []opts.PieData
	for _, t := range typeOrder {
		count := stats.CountsByType[t]
		if count == 0 {
			continue
		}
		items = append(items, opts.PieData{Name: string(t), Value: count})
	}

	pie.AddSeries("Types", items).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}: {c}",
			}),
		)

	if err := pie.Render(w); err != nil {
		return fmt.Errorf("failed to render type distribution: %w", err)
	}
	return nil
}
