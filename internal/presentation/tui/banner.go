package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the startup banner.
func PrintBanner(w io.Writer, profile termenv.Profile, version string) {
	lines := []struct {
		text  string
		color string
	}{
		{`   ___ _                            _           _   `, "#818cf8"},
		{`  / __| |___ __ _ _ _  ___ _ _  ___| |__  ___ _| |_ `, "#a78bfa"},
		{` | (__| / -_) _' | ' \/ -_) '_|/ -_) '_ \/ _ \_   _|`, "#c084fc"},
		{`  \___|_\___\__,_|_||_\___|_|  \___|_.__/\___/ |_|  `, "#e879f9"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, profile.String(l.text).Foreground(profile.Color(l.color)))
	}
	fmt.Fprintln(w, profile.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
