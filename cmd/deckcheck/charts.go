package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lightdarktcg/companion/internal/charts"
	"github.com/lightdarktcg/companion/internal/deck"
)

// writeCharts renders the requested chart files, if any.
func writeCharts(stats deck.Stats) error {
	if *curveOut != "" {
		if err := renderTo(*curveOut, stats, charts.RenderCostCurve); err != nil {
			return err
		}
		fmt.Printf("Wrote cost curve chart to %s\n", *curveOut)
	}
	if *typesOut != "" {
		if err := renderTo(*typesOut, stats, charts.RenderTypeDistribution); err != nil {
			return err
		}
		fmt.Printf("Wrote type distribution chart to %s\n", *typesOut)
	}
	return nil
}

func renderTo(path string, stats deck.Stats, render func(deck.Stats, charts.ChartConfig, io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return render(stats, charts.DefaultChartConfig(), f)
}
