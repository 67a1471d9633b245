package main

import (
	"fmt"
	"io"
	"time"

	"cclex/internal/progress"
)

// printStageTimings печатает суммарное время по стадиям; lex суммируется по всем горутинам.
func printStageTimings(out io.Writer, timings progress.Timings, counts map[progress.Stage]int) {
	if out == nil {
		return
	}
	if timings.Has(progress.StageLex) {
		fmt.Fprintf(out, "lexed %.1f ms across %d files\n", toMillis(timings.Duration(progress.StageLex)), counts[progress.StageLex])
	}
	if timings.Has(progress.StageRender) {
		fmt.Fprintf(out, "rendered %.1f ms\n", toMillis(timings.Duration(progress.StageRender)))
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
