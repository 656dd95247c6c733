// Command stereoimager runs the stereo imager engine over WAV files.
//
// Usage:
//
//	stereoimager process [flags] IN.wav OUT.wav
//	stereoimager response [flags]
//
// Examples:
//
//	stereoimager process --width 150 --mono-bass-freq 100 in.wav out.wav
//	stereoimager process --multiband --low-width 0 --high-width 180 in.wav out.wav
//	stereoimager response --width 0 --excite side
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/cwbudde/algo-stereo/dsp/imager"
)

var version = "0.1.0"

// ParamFlags maps command-line flags onto imager.Params.
type ParamFlags struct {
	Bypass     bool    `help:"Bypass the whole engine."`
	InputGain  float64 `name:"input-gain" default:"0" help:"Input gain in dB (-24..24)."`
	OutputGain float64 `name:"output-gain" default:"0" help:"Output gain in dB (-24..24)."`
	Width      float64 `short:"w" default:"100" help:"Stereo width in percent (0..200)."`
	Pan        float64 `default:"0" help:"Pan position (-1..1)."`
	Balance    float64 `default:"0" help:"Balance (-1..1)."`

	MonoBassFreq float64 `name:"mono-bass-freq" default:"120" help:"Mono bass crossover in Hz (20..500)."`
	NoMonoBass   bool    `name:"no-mono-bass" help:"Disable the mono bass stage."`

	Multiband   bool    `short:"m" help:"Enable the three-band width stage."`
	LowMidFreq  float64 `name:"low-mid" default:"250" help:"Low/mid crossover in Hz (80..1000)."`
	MidHighFreq float64 `name:"mid-high" default:"4000" help:"Mid/high crossover in Hz (1000..10000)."`
	LowWidth    float64 `name:"low-width" default:"100" help:"Low band width in percent."`
	MidWidth    float64 `name:"mid-width" default:"100" help:"Mid band width in percent."`
	HighWidth   float64 `name:"high-width" default:"100" help:"High band width in percent."`
}

// Params converts the flags into an engine parameter set.
func (f ParamFlags) Params() imager.Params {
	return imager.Params{
		Bypass:           f.Bypass,
		InputGainDB:      f.InputGain,
		OutputGainDB:     f.OutputGain,
		Width:            f.Width,
		Pan:              f.Pan,
		Balance:          f.Balance,
		MonoBassFreq:     f.MonoBassFreq,
		MonoBassEnabled:  !f.NoMonoBass,
		MultibandEnabled: f.Multiband,
		LowMidFreq:       f.LowMidFreq,
		MidHighFreq:      f.MidHighFreq,
		LowWidth:         f.LowWidth,
		MidWidth:         f.MidWidth,
		HighWidth:        f.HighWidth,
	}
}

// CLI defines the command-line interface.
type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version information."`

	Process  ProcessCmd  `cmd:"" help:"Process a stereo WAV file."`
	Response ResponseCmd `cmd:"" help:"Print the magnitude response of the engine."`
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("stereoimager"),
		kong.Description("Stereo width, pan and multiband imaging for WAV files"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)

	if err := ctx.Run(); err != nil {
		PrintError(err.Error())
		os.Exit(1)
	}
}
