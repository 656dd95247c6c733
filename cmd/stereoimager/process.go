package main

import (
	"fmt"
	"log"
	"math"
	"path/filepath"
	"time"

	"github.com/cwbudde/algo-stereo/dsp/imager"
	"github.com/cwbudde/algo-stereo/measure/stereo"
)

// ProcessCmd processes a stereo WAV file.
type ProcessCmd struct {
	ParamFlags `embed:""`

	BlockSize int  `name:"block-size" short:"b" default:"512" help:"Processing block size in frames."`
	Verbose   bool `help:"Print file details while processing."`

	Input  string `arg:"" name:"input" type:"existingfile" help:"Input WAV file."`
	Output string `arg:"" name:"output" type:"path" help:"Output WAV file."`
}

// Run executes the process command.
func (c *ProcessCmd) Run() error {
	start := time.Now()

	stats, err := processFile(c.Input, c.Output, c.Params(), c.BlockSize, c.Verbose)
	if err != nil {
		return err
	}

	fmt.Println(TitleStyle.Render(fmt.Sprintf("%s -> %s",
		filepath.Base(c.Input), filepath.Base(c.Output))))
	printReport(stats, time.Since(start))

	return nil
}

// processStats summarizes the meters over a whole file.
type processStats struct {
	sampleRate int
	channels   int
	bitDepth   int
	frames     int

	inputPeak  [2]float64
	outputPeak [2]float64

	correlation        float64
	minCorrelation     float64
	correlationWindows int

	// Last published levels.
	final imager.Snapshot

	scatterPoints int
	scatterPeak   float64
	scatterWidth  float64
}

// processFile reads in, runs the engine block by block and writes out at
// the input's sample rate and bit depth.
func processFile(in, out string, params imager.Params, blockSize int, verbose bool) (*processStats, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("invalid block size %d", blockSize)
	}

	pcm, err := readWAV(in, verbose)
	if err != nil {
		return nil, err
	}

	eng, err := imager.New(
		imager.WithSampleRate(float64(pcm.sampleRate)),
		imager.WithBlockSize(blockSize),
		imager.WithParams(params),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	stats := &processStats{
		sampleRate:     pcm.sampleRate,
		channels:       pcm.channels,
		bitDepth:       pcm.bitDepth,
		frames:         pcm.frames(),
		minCorrelation: 1,
	}

	var corr stereo.Average
	windows := 0
	progress := newProgressTracker(stats.frames, verbose)

	for startFrame := 0; startFrame < stats.frames; startFrame += blockSize {
		end := min(startFrame+blockSize, stats.frames)

		// Blocks are split at correlation window boundaries so the meter is
		// read once for every completed window.
		for pos := startFrame; pos < end; {
			next := min(end, (pos/stereo.DefaultCorrelationWindow+1)*stereo.DefaultCorrelationWindow)
			eng.ProcessInterleaved(pcm.samples[pos*pcm.channels:next*pcm.channels], pcm.channels)

			m := eng.Meters()
			stats.inputPeak[0] = max(stats.inputPeak[0], m.InputPeakL)
			stats.inputPeak[1] = max(stats.inputPeak[1], m.InputPeakR)
			stats.outputPeak[0] = max(stats.outputPeak[0], m.OutputPeakL)
			stats.outputPeak[1] = max(stats.outputPeak[1], m.OutputPeakR)

			if w := next / stereo.DefaultCorrelationWindow; w > windows && !params.Bypass {
				corr.Add(m.Correlation)
				stats.minCorrelation = min(stats.minCorrelation, m.Correlation)
				windows = w
			}

			pos = next
		}

		progress.reportIfNeeded(end)
	}

	if err := writeWAV(out, pcm); err != nil {
		return nil, err
	}

	stats.correlation = corr.Mean()
	stats.correlationWindows = windows
	stats.final = eng.Meters()
	summarizeScatter(stats, eng.ScatterSamples(nil))

	if verbose {
		log.Printf("Output: %s", out)
	}

	return stats, nil
}

// summarizeScatter records the extent of the captured scatter frames. The
// width is the ratio of side to mid energy of the cloud.
func summarizeScatter(stats *processStats, points []stereo.Sample) {
	stats.scatterPoints = len(points)

	var mid, side float64
	for _, p := range points {
		stats.scatterPeak = max(stats.scatterPeak, math.Abs(p.L), math.Abs(p.R))
		m := 0.5 * (p.L + p.R)
		s := 0.5 * (p.L - p.R)
		mid += m * m
		side += s * s
	}

	if mid > 0 {
		stats.scatterWidth = math.Sqrt(side / mid)
	}
}

// progressTracker logs coarse progress in verbose mode.
type progressTracker struct {
	totalFrames  int
	verbose      bool
	lastProgress int
}

func newProgressTracker(totalFrames int, verbose bool) *progressTracker {
	return &progressTracker{totalFrames: totalFrames, verbose: verbose}
}

func (p *progressTracker) reportIfNeeded(done int) {
	if !p.verbose || p.totalFrames <= 0 {
		return
	}

	progress := done * 100 / p.totalFrames
	if progress >= p.lastProgress+10 {
		log.Printf("  Progress: %d%%", progress)
		p.lastProgress = progress
	}
}
