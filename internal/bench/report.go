package bench

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// WriteResults writes the results as a table.
func WriteResults(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(
		tw,
		"CASE\tOPERATION\tOBSERVERS\tITERATIONS\tNS/OP\tNS/OBSERVER\tALLOCS/OP\tB/OP\tRELATIVE",
	); err != nil {
		return err
	}

	for _, r := range results {
		if _, err := fmt.Fprintf(
			tw,
			"%s\t%s\t%d\t%d\t%d\t%.2f\t%d\t%d\tx%.2f\n",
			r.Case,
			r.Operation,
			r.Observers,
			r.Iterations,
			r.NsPerOp,
			r.NsPerObserver(),
			r.AllocsPerOp,
			r.BytesPerOp,
			r.Relative,
		); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// WriteMetrics writes the metrics gathered from gatherer in the Prometheus text exposition format.
func WriteMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("error gathering metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("error writing metric family %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
