package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"KCScope/internal/domain/scenario"
	xutil "KCScope/pkg/util"
)

func renderOutcome(w io.Writer, at time.Time, out scenario.Outcome) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Time:\t%s\n", xutil.FormatTimestamp(at))
	fmt.Fprintf(tw, "Mode:\t%s\n", out.Mode)

	if p := out.Positioning; p != nil {
		fmt.Fprintf(tw, "Price vs VWAP:\t%s\n", p.VWAP)
		fmt.Fprintf(tw, "Price vs KC:\t%s\n", p.KC)
		fmt.Fprintf(tw, "Deviation:\t%.2f%% (%s)\n", p.DeviationPct, p.Deviation)
	}
	if s := out.Selection; s != nil {
		fmt.Fprintf(tw, "Selection:\t%s / %s / %s / %s\n", s.PriceVWAP, s.VWAPSlope, s.KCPosition, s.Distance)
	}

	switch {
	case out.Mode == scenario.ModeNumeric:
		fmt.Fprintf(tw, "Scenario:\t%s\n", out.Scenario)
		fmt.Fprintf(tw, "Risk:\t%s\n", out.Risk)
		fmt.Fprintf(tw, "Trade idea:\t%s\n", out.TradeIdea)
		fmt.Fprintf(tw, "Warning:\t%s\n", out.Warning)
	case out.Matched:
		fmt.Fprintf(tw, "Interpretation:\t%s\n", out.Scenario)
		fmt.Fprintf(tw, "Action:\t%s\n", out.TradeIdea)
	default:
		fmt.Fprintf(tw, "Interpretation:\t%s\n", out.Scenario)
	}

	for _, warn := range out.Warnings {
		fmt.Fprintf(tw, "Check:\t%s\n", warn.Message)
	}
	return tw.Flush()
}

func renderTable(w io.Writer, entries []scenario.TableEntry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join([]string{"PRICE/VWAP", "SLOPE", "KC POSITION", "DISTANCE", "INTERPRETATION", "ACTION"}, "\t"))
	for _, e := range entries {
		fmt.Fprintln(tw, strings.Join([]string{
			string(e.PriceVWAP),
			string(e.VWAPSlope),
			string(e.KCPosition),
			string(e.Distance),
			e.Interpretation.Interpretation,
			e.Action,
		}, "\t"))
	}
	return tw.Flush()
}
