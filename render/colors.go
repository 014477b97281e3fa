package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pendulum/parameter"
)

// Palette holds the resolved terminal colors for one color mode
type Palette struct {
	Background tcell.Color
	Rope       tcell.Color
	Ball       tcell.Color

	StatusText      tcell.Color
	StatusRunningBg tcell.Color
	StatusPausedBg  tcell.Color
	StatusInfo      tcell.Color
	StatusHelp      tcell.Color
}

// Status bar colors
var (
	RgbStatusText    = RGB{0, 0, 0}       // Dark text on mode badge
	RgbStatusRunning = RGB{144, 238, 144} // Light grass green
	RgbStatusPaused  = RGB{255, 165, 0}   // Orange
	RgbStatusInfo    = RGB{255, 255, 255} // White
	RgbStatusHelp    = RGB{180, 180, 180} // Brighter gray
)

// NewPalette resolves draw colors; trueColor false falls back to the basic ANSI set
func NewPalette(trueColor bool) Palette {
	if !trueColor {
		return Palette{
			Background:      tcell.ColorBlack,
			Rope:            tcell.ColorSilver,
			Ball:            tcell.ColorRed,
			StatusText:      tcell.ColorBlack,
			StatusRunningBg: tcell.ColorGreen,
			StatusPausedBg:  tcell.ColorOlive,
			StatusInfo:      tcell.ColorWhite,
			StatusHelp:      tcell.ColorSilver,
		}
	}

	bg := FromRGBA(parameter.BackgroundColor)
	return Palette{
		Background:      bg.Color(),
		Rope:            Over(parameter.RopeColor, bg).Color(),
		Ball:            Over(parameter.BallColor, bg).Color(),
		StatusText:      RgbStatusText.Color(),
		StatusRunningBg: RgbStatusRunning.Color(),
		StatusPausedBg:  RgbStatusPaused.Color(),
		StatusInfo:      RgbStatusInfo.Color(),
		StatusHelp:      RgbStatusHelp.Color(),
	}
}
