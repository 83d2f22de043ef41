package console

import "github.com/fatih/color"

// Theme is one of the two palettes; the active one follows the persisted
// display preference.
type Theme struct {
	Title   *color.Color
	Accent  *color.Color
	Muted   *color.Color
	Link    *color.Color
	Tag     *color.Color
	Error   *color.Color
	Success *color.Color
}

func ThemeFor(dark bool) Theme {
	if dark {
		return Theme{
			Title:   color.New(color.FgHiYellow, color.Bold),
			Accent:  color.New(color.FgYellow),
			Muted:   color.New(color.FgHiBlack),
			Link:    color.New(color.FgHiBlue, color.Underline),
			Tag:     color.New(color.FgHiCyan),
			Error:   color.New(color.FgHiRed),
			Success: color.New(color.FgHiGreen),
		}
	}
	return Theme{
		Title:   color.New(color.FgHiMagenta, color.Bold),
		Accent:  color.New(color.FgMagenta),
		Muted:   color.New(color.FgWhite),
		Link:    color.New(color.FgBlue, color.Underline),
		Tag:     color.New(color.FgCyan),
		Error:   color.New(color.FgRed),
		Success: color.New(color.FgGreen),
	}
}
