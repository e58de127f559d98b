package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the application banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	// Same indigo-to-rose ramp as the bars in the report.
	s1 := out.String("   ___ _         _      ").Foreground(out.Color("#818cf8"))
	s2 := out.String("  / __| |_  __ _(_)_ _  ").Foreground(out.Color("#a78bfa"))
	s3 := out.String(" | (__| ' \\/ _` | | ' \\ ").Foreground(out.Color("#e879f9"))
	s4 := out.String("  \\___|_||_\\__,_|_|_||_|").Foreground(out.Color("#fb7185"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, s1)
	fmt.Fprintln(w, s2)
	fmt.Fprintln(w, s3)
	fmt.Fprintln(w, s4)
	fmt.Fprintf(w, "  v%s\n\n", strings.TrimSpace(version))
}
