package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/cwbudde/algo-stereo/dsp/core"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	bitsPerSample8  = 8
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	stereoChannels = 2
)

// errNotStereo is returned for inputs with fewer than two channels.
var errNotStereo = errors.New("input must have at least two channels")

// pcmAudio is a decoded WAV file as normalized, interleaved float samples.
type pcmAudio struct {
	samples    []float64
	sampleRate int
	channels   int
	bitDepth   int
}

// frames returns the number of complete frames.
func (a *pcmAudio) frames() int {
	if a.channels == 0 {
		return 0
	}
	return len(a.samples) / a.channels
}

// readWAV decodes a WAV file into normalized floats.
func readWAV(path string, verbose bool) (*pcmAudio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	format := decoder.Format()
	channels := format.NumChannels
	if channels < stereoChannels {
		return nil, fmt.Errorf("%s: %w (got %d)", path, errNotStereo, channels)
	}

	bitDepth := int(decoder.BitDepth)
	invMax := 1.0 / maxValue(bitDepth)

	samples := make([]float64, len(buf.Data)-len(buf.Data)%channels)
	for i := range samples {
		v := buf.Data[i]
		if bitDepth == bitsPerSample8 {
			// 8-bit PCM is unsigned
			v -= 128
		}
		samples[i] = float64(v) * invMax
	}

	if verbose {
		log.Printf("Input: %s", path)
		log.Printf("  Sample rate: %d Hz", format.SampleRate)
		log.Printf("  Channels: %d", channels)
		log.Printf("  Bit depth: %d", bitDepth)
		log.Printf("  Frames: %d", len(samples)/channels)
	}

	return &pcmAudio{
		samples:    samples,
		sampleRate: format.SampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
	}, nil
}

// writeWAV encodes normalized floats as PCM at the given bit depth. Samples
// outside [-1, 1] are hard-clipped.
func writeWAV(path string, a *pcmAudio) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	scale := maxValue(a.bitDepth)
	data := make([]int, len(a.samples))
	for i, v := range a.samples {
		s := int(math.Round(core.HardClip(v, 1) * scale))
		if a.bitDepth == bitsPerSample8 {
			s += 128
		}
		data[i] = s
	}

	encoder := wav.NewEncoder(f, a.sampleRate, a.bitDepth, a.channels, 1)
	buf := &audio.IntBuffer{
		Data: data,
		Format: &audio.Format{
			SampleRate:  a.sampleRate,
			NumChannels: a.channels,
		},
		SourceBitDepth: a.bitDepth,
	}

	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}

	// Close finalizes the header sizes.
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}

	return nil
}

func maxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample8:
		return 127
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}
