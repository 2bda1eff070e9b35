// Package cli — render.go turns Status values into the two-character
// marker column shown next to each path.
package cli

import (
	"github.com/fatih/color"

	"github.com/input-output-hk/catalyst-forge-libs/gitstatus"
)

// colorFor maps a status code to its display color.
func colorFor(code gitstatus.Code) *color.Color {
	switch code {
	case gitstatus.New:
		return color.New(color.FgGreen)
	case gitstatus.Modified:
		return color.New(color.FgYellow)
	case gitstatus.Deleted:
		return color.New(color.FgRed)
	case gitstatus.Renamed:
		return color.New(color.FgMagenta)
	case gitstatus.TypeChanged:
		return color.New(color.FgCyan)
	case gitstatus.Ignored:
		return color.New(color.FgHiBlack)
	case gitstatus.Conflicted:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.Faint)
	}
}

// marker returns the single-character marker for a code, honoring any
// override from the config file.
func marker(cfg Config, code gitstatus.Code) string {
	if m, ok := cfg.Markers[code.String()]; ok {
		return m
	}
	return string(code.Rune())
}

// renderStatus renders the staged and unstaged markers for a status,
// colored per code.
func renderStatus(cfg Config, st gitstatus.Status) string {
	staged := colorFor(st.Staged).Sprint(marker(cfg, st.Staged))
	unstaged := colorFor(st.Unstaged).Sprint(marker(cfg, st.Unstaged))
	return staged + unstaged
}
