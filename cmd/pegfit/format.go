package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// formatFloat renders a float64 in its shortest round-tripping form, so
// whole numbers print without a trailing ".0".
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// describePeg renders a peg for text output, e.g. "Round peg r=5".
func describePeg(peg CLIPeg) string {
	switch {
	case peg.Kind == "round" && peg.Radius != nil:
		return fmt.Sprintf("Round peg r=%s", formatFloat(*peg.Radius))
	case peg.Kind == "square" && peg.Width != nil:
		return fmt.Sprintf("Square peg w=%s", formatFloat(*peg.Width))
	default:
		return peg.Kind + " peg"
	}
}

// formatChecksText writes one line per check:
//
//	<peg> fits round hole r=<radius>: <true|false>
func formatChecksText(w io.Writer, checks []CLICheck) {
	for _, c := range checks {
		fmt.Fprintf(w, "%s fits round hole r=%s: %t\n",
			describePeg(c.Peg), formatFloat(c.Hole.Radius), c.Fits)
	}
}

// outputResult marshals a CLIResult to w as indented JSON.
func outputResult(w io.Writer, result CLIResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// validFormats lists accepted values for --format.
var validFormats = []string{"text", "json"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
