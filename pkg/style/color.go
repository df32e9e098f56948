package style

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ShouldColorize decides whether output to f gets ANSI styling. mode is the
// configured color setting: "always" and "never" are absolute, anything
// else means auto-detection (a terminal with a color profile and no
// NO_COLOR in the environment).
func ShouldColorize(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}
