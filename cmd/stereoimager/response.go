package main

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-stereo/dsp/imager"
	"github.com/cwbudde/algo-stereo/measure/response"
)

// ResponseCmd prints the engine's magnitude response at a list of frequencies.
type ResponseCmd struct {
	ParamFlags `embed:""`

	SampleRate float64   `name:"sample-rate" short:"r" default:"48000" help:"Sample rate in Hz."`
	Size       int       `default:"8192" help:"Impulse length, a power of two."`
	Excite     string    `default:"both" enum:"both,left,right,side" help:"Excitation: both, left, right or side."`
	Freqs      []float64 `name:"freq" short:"f" default:"50,100,250,1000,4000,10000" help:"Frequencies to report in Hz."`
}

// Run executes the response command.
func (c *ResponseCmd) Run() error {
	exc, err := parseExcitation(c.Excite)
	if err != nil {
		return err
	}

	resp, err := measureEngine(c.Params(), c.SampleRate, c.Size, exc)
	if err != nil {
		return err
	}

	fmt.Println(TitleStyle.Render(fmt.Sprintf("Magnitude response (%s excitation, %g Hz)",
		exc, c.SampleRate)))
	fmt.Print(renderResponse(resp, c.Freqs))

	return nil
}

// measureEngine builds a fresh engine with params and measures its impulse
// response.
func measureEngine(params imager.Params, sampleRate float64, size int, exc response.Excitation) (*response.Response, error) {
	eng, err := imager.New(
		imager.WithSampleRate(sampleRate),
		imager.WithParams(params),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	resp, err := response.Measure(eng, sampleRate, size, exc)
	if err != nil {
		return nil, fmt.Errorf("failed to measure response: %w", err)
	}

	return resp, nil
}

func parseExcitation(s string) (response.Excitation, error) {
	switch strings.ToLower(s) {
	case "both":
		return response.ExciteBoth, nil
	case "left":
		return response.ExciteLeft, nil
	case "right":
		return response.ExciteRight, nil
	case "side":
		return response.ExciteSide, nil
	default:
		return 0, fmt.Errorf("unknown excitation %q", s)
	}
}

func renderResponse(resp *response.Response, freqs []float64) string {
	var b strings.Builder

	for _, f := range freqs {
		if f <= 0 || f >= resp.SampleRate/2 {
			continue
		}

		b.WriteString(keyValue(fmt.Sprintf("%g Hz", f), fmt.Sprintf("L %7.2f dB  R %7.2f dB",
			resp.MagnitudeDBAt(response.Left, f),
			resp.MagnitudeDBAt(response.Right, f))) + "\n")
	}

	return b.String()
}
