package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`  ___          _                    `, "#fbbf24"},
	{` / __| __ ___ _(_)___ __ _ __ _ __  `, "#f59e0b"},
	{` \__ \/ _' \ V / (_-</ _' / _' / _| `, "#f97316"},
	{` |___/\__,_|\_/|_/__/\__,_\__,_\__| `, "#ef4444"},
	{`        M i g k a i r l !           `, "#e11d48"},
}

// PrintBanner writes the game banner to w using the terminal's colour profile.
func PrintBanner(w io.Writer) {
	printBanner(w, termenv.ColorProfile())
}

func printBanner(w io.Writer, p termenv.Profile) {
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)).Bold())
	}
	fmt.Fprintln(w)
}
