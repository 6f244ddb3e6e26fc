package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"KCScope/internal/domain/scenario"
)

type options struct {
	json     bool
	large    float64
	moderate float64
	now      func() time.Time
}

func (o *options) classifier() *scenario.Classifier {
	return scenario.NewClassifier(scenario.WithDistanceThresholds(scenario.DistanceThresholds{
		Large:    o.large,
		Moderate: o.moderate,
	}))
}

func newRootCmd() *cobra.Command {
	o := &options{now: time.Now}
	root := &cobra.Command{
		Use:   "kcscope",
		Short: "Interpret price against VWAP and Keltner Channel bands",
		Long: `kcscope classifies a market snapshot into a named scenario with a
risk level and trade idea.

Examples:
  kcscope numeric --price 103 --vwap 100 --upper 102 --middle 100 --lower 98
  kcscope categorical --price-vwap "At VWAP" --slope Rising --kc "At or Near KC Middle" --distance N/A
  kcscope slope --price-vwap "Below VWAP" --slope Falling --kc "Below KC Lower" --diff -6.5
  kcscope table --json`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&o.json, "json", false, "Print results as JSON")
	root.PersistentFlags().Float64Var(&o.large, "large", scenario.DefaultDistanceThresholds.Large, "Points from VWAP at which distance is Large")
	root.PersistentFlags().Float64Var(&o.moderate, "moderate", scenario.DefaultDistanceThresholds.Moderate, "Points from VWAP at which distance is Moderate")

	root.AddCommand(newNumericCmd(o), newCategoricalCmd(o), newSlopeCmd(o), newTableCmd(o))
	return root
}

func newNumericCmd(o *options) *cobra.Command {
	var r scenario.Reading
	cmd := &cobra.Command{
		Use:   "numeric",
		Short: "Classify exact price, VWAP and band values",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := o.classifier().Evaluate(scenario.NumericInput(r))
			if err != nil {
				return err
			}
			return o.print(cmd.OutOrStdout(), out)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&r.Price, "price", 0, "Current price")
	f.Float64Var(&r.VWAP, "vwap", 0, "Volume-weighted average price")
	f.Float64Var(&r.KCUpper, "upper", 0, "Keltner Channel upper band")
	f.Float64Var(&r.KCMiddle, "middle", 0, "Keltner Channel middle band")
	f.Float64Var(&r.KCLower, "lower", 0, "Keltner Channel lower band")
	for _, name := range []string{"price", "vwap", "upper", "middle", "lower"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

type labelFlags struct {
	priceVWAP string
	slope     string
	kc        string
}

func (l *labelFlags) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&l.priceVWAP, "price-vwap", "", "Above VWAP, At VWAP or Below VWAP")
	f.StringVar(&l.slope, "slope", "", "Rising or Falling")
	f.StringVar(&l.kc, "kc", "", "Keltner Channel zone, e.g. \"Near VWAP\"")
	for _, name := range []string{"price-vwap", "slope", "kc"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

func newCategoricalCmd(o *options) *cobra.Command {
	var (
		labels   labelFlags
		distance string
	)
	cmd := &cobra.Command{
		Use:   "categorical",
		Short: "Look up a chart-reading selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := scenario.Selection{
				PriceVWAP:  scenario.PriceVsVWAP(labels.priceVWAP),
				VWAPSlope:  scenario.Slope(labels.slope),
				KCPosition: scenario.KCZone(labels.kc),
				Distance:   scenario.Distance(distance),
			}
			out, err := o.classifier().Evaluate(scenario.CategoricalInput(sel))
			if err != nil {
				return err
			}
			return o.print(cmd.OutOrStdout(), out)
		},
	}
	labels.bind(cmd)
	cmd.Flags().StringVar(&distance, "distance", string(scenario.NoDist), "Large, Moderate, Small or N/A")
	return cmd
}

func newSlopeCmd(o *options) *cobra.Command {
	var (
		labels labelFlags
		diff   float64
	)
	cmd := &cobra.Command{
		Use:   "slope",
		Short: "Look up a selection, deriving distance from a points difference",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := scenario.SlopeInput{
				PriceVWAP:  scenario.PriceVsVWAP(labels.priceVWAP),
				VWAPSlope:  scenario.Slope(labels.slope),
				KCPosition: scenario.KCZone(labels.kc),
				PointsDiff: diff,
			}
			out, err := o.classifier().Evaluate(scenario.SlopeAwareInput(in))
			if err != nil {
				return err
			}
			return o.print(cmd.OutOrStdout(), out)
		},
	}
	labels.bind(cmd)
	cmd.Flags().Float64Var(&diff, "diff", 0, "Price minus VWAP in points")
	return cmd
}

func newTableCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "List every selection the lookup table interprets",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := o.classifier().Table().Entries()
			w := cmd.OutOrStdout()
			if o.json {
				return writeJSON(w, entries)
			}
			return renderTable(w, entries)
		},
	}
}

func (o *options) print(w io.Writer, out scenario.Outcome) error {
	if o.json {
		return writeJSON(w, struct {
			Timestamp string `json:"timestamp"`
			scenario.Outcome
		}{Timestamp: o.now().UTC().Format(time.RFC3339), Outcome: out})
	}
	return renderOutcome(w, o.now(), out)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
