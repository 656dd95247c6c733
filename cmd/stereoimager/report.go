package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/cwbudde/algo-stereo/dsp/core"
	"github.com/cwbudde/algo-stereo/measure/stereo"
)

// printReport prints the meter summary of a processed file.
func printReport(stats *processStats, elapsed time.Duration) {
	fmt.Print(renderReport(stats, elapsed))
}

func renderReport(stats *processStats, elapsed time.Duration) string {
	var b strings.Builder

	seconds := float64(stats.frames) / float64(stats.sampleRate)
	b.WriteString(keyValue("Format", fmt.Sprintf("%d Hz, %d channels, %d-bit",
		stats.sampleRate, stats.channels, stats.bitDepth)) + "\n")
	b.WriteString(keyValue("Duration", fmt.Sprintf("%.2fs", seconds)) + "\n")
	if elapsed > 0 {
		b.WriteString(keyValue("Speed", fmt.Sprintf("%.1fx realtime", seconds/elapsed.Seconds())) + "\n")
	}

	b.WriteString(SectionStyle.Render("Levels") + "\n")
	b.WriteString(keyValue("Input peak", fmt.Sprintf("L %s  R %s",
		formatDB(stats.inputPeak[0]), formatDB(stats.inputPeak[1]))) + "\n")
	b.WriteString(keyValue("Output peak", fmt.Sprintf("L %s  R %s",
		formatDB(stats.outputPeak[0]), formatDB(stats.outputPeak[1]))) + "\n")

	m := stats.final
	b.WriteString(keyValue("Left / Right", fmt.Sprintf("%s / %s",
		formatDB(m.LeftLevel), formatDB(m.RightLevel))) + "\n")
	b.WriteString(keyValue("Mid / Side", fmt.Sprintf("%s / %s",
		formatDB(m.MidLevel), formatDB(m.SideLevel))) + "\n")
	b.WriteString(keyValue("Bands", fmt.Sprintf("low %s  mid %s  high %s",
		formatDB(m.LowLevel), formatDB(m.MidBandLevel), formatDB(m.HighLevel))) + "\n")

	b.WriteString(SectionStyle.Render("Stereo image") + "\n")
	if stats.correlationWindows == 0 {
		b.WriteString(keyValue("Correlation", "n/a") + "\n")
	} else {
		b.WriteString(keyValue("Correlation", fmt.Sprintf("%+.2f avg, %+.2f min",
			stats.correlation, stats.minCorrelation)) + "\n")
		b.WriteString(keyValue("Phase", renderPhase(stereo.ClassifyPhase(stats.minCorrelation))) + "\n")
	}

	b.WriteString(keyValue("Scatter", fmt.Sprintf("%d points, peak %s, side/mid %.2f",
		stats.scatterPoints, formatDB(stats.scatterPeak), stats.scatterWidth)) + "\n")

	return b.String()
}

func renderPhase(status stereo.PhaseStatus) string {
	switch status {
	case stereo.PhaseInPhase, stereo.PhaseMostlyInPhase:
		return OKStyle.Render(status.String())
	case stereo.PhasePartiallyCorrelated:
		return ValueStyle.Render(status.String())
	default:
		return WarnStyle.Render(status.String())
	}
}

func formatDB(linear float64) string {
	return fmt.Sprintf("%6.1f dB", core.LinearToDecibels(linear))
}
