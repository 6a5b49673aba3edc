package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/oceanai/internal/chart"
	"github.com/ziadkadry99/oceanai/internal/ocean"
)

var chartCmd = &cobra.Command{
	Use:   "chart <kind>",
	Short: "Render one measurement chart to a PNG file",
	Long: `Renders the chart of temperature, salinity, ph or oxygen to a PNG file.
By default the built-in window is drawn after --ticks resamples; --samples
draws an explicit series instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringP("output", "o", "", "output file (defaults to <kind>.png)")
	chartCmd.Flags().Int("ticks", 0, "number of resamples before rendering")
	chartCmd.Flags().Float64Slice("samples", nil, "explicit samples to draw, e.g. 1,2.5,3")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	kind, err := ocean.ParseKind(args[0])
	if err != nil {
		return err
	}
	spec, _ := ocean.SpecFor(kind)

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = string(kind) + ".png"
	}
	ticks, _ := cmd.Flags().GetInt("ticks")
	samples, _ := cmd.Flags().GetFloat64Slice("samples")

	mon, err := buildMonitor(cfg)
	if err != nil {
		return err
	}

	var surface *chart.Surface
	if len(samples) > 0 {
		surface, err = chart.NewSurface(spec.SurfaceID, cfg.Charts.Width, cfg.Charts.Height)
		if err != nil {
			return err
		}
		if err := mon.Renderer().Draw(surface, spec.Label, samples, spec.Color); err != nil {
			return fmt.Errorf("drawing samples: %w", err)
		}
	} else {
		for range ticks {
			mon.Tick()
		}
		surface, _ = mon.Surface(kind)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer f.Close()
	if err := surface.EncodePNG(f); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	fmt.Printf("Wrote %s (%dx%d): %s\n", output, surface.Width(), surface.Height(), surface.Label())
	return nil
}
