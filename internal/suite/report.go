package suite

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Result, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	title := r.Name
	if title == "" {
		title = "suite"
	}
	fmt.Fprintf(tw, "\n=== %s ===\n\n", title)

	header := []string{"Case", "Expression", "Postfix", "Outcome", "Status"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, cr := range r.Cases {
		outcome := cr.Got
		if cr.Kind != "" {
			outcome = "error: " + cr.Kind
		}
		status := "PASS"
		if !cr.Passed {
			status = "FAIL: " + cr.Reason
		}
		row := []string{cr.Case.ID, cr.Case.Expression, cr.Postfix, outcome, status}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintf(tw, "\n%d passed, %d failed\n", r.Passed, r.Failed)
	if l := r.Latency; l.Samples > 0 {
		fmt.Fprintf(tw, "latency: min %s\tp50 %s\tp95 %s\tmax %s\tmean %s\n",
			fmtDuration(l.Min), fmtDuration(l.P50), fmtDuration(l.P95), fmtDuration(l.Max), fmtDuration(l.Mean))
	}
	tw.Flush()
}

func fmtDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	}
	return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
}
