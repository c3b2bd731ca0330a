// Package render prints schedules as plain text: a title banner, a Gantt
// line and a schedule table with averages in the footer.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/bradleyombachi/cpusched/scheduler"
)

const cellWidth = 8

// Report writes the title, Gantt chart and schedule table for r.
func Report(w io.Writer, title string, r *scheduler.Report) {
	Title(w, title)
	Gantt(w, r.Segments)
	Schedule(w, r)
}

func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// Gantt prints one cell per segment followed by the segment start times.
// Idle stretches between segments get a "-" cell.
func Gantt(w io.Writer, segments []scheduler.Segment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(segments) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}

	var labels, times []string
	for i, seg := range segments {
		if i > 0 && seg.Start > segments[i-1].End {
			labels = append(labels, "-")
			times = append(times, fmt.Sprint(segments[i-1].End))
		}
		labels = append(labels, fmt.Sprint(seg.TaskID))
		times = append(times, fmt.Sprint(seg.Start))
	}

	_, _ = fmt.Fprint(w, "|")
	for _, label := range labels {
		padding := strings.Repeat(" ", max(cellWidth-len(label), 0)/2)
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for _, ts := range times {
		_, _ = fmt.Fprint(w, ts, "\t")
	}
	_, _ = fmt.Fprint(w, segments[len(segments)-1].End)
	_, _ = fmt.Fprintf(w, "\n\n")
}

// Schedule prints the per-task table of r with averages and throughput as the footer.
func Schedule(w io.Writer, r *scheduler.Report) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, len(r.Tasks))
	for i, m := range r.Tasks {
		rows[i] = []string{
			fmt.Sprint(m.TaskID),
			fmt.Sprint(m.Priority),
			fmt.Sprint(m.BurstTime),
			fmt.Sprint(m.ArrivalTime),
			fmt.Sprint(m.StartTime),
			fmt.Sprint(m.WaitingTime),
			fmt.Sprint(m.TurnaroundTime),
			fmt.Sprint(m.ResponseTime),
			fmt.Sprint(m.CompletionTime),
		}
	}

	s := r.Summary
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Start", "Wait", "Turnaround", "Response", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Switches\n%d", s.ContextSwitches),
		fmt.Sprintf("Average\n%.2f", s.AvgWaiting),
		fmt.Sprintf("Average\n%.2f", s.AvgTurnaround),
		fmt.Sprintf("Average\n%.2f", s.AvgResponse),
		fmt.Sprintf("Throughput\n%.2f/t", s.Throughput)})
	table.Render()
}
