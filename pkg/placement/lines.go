package placement

import (
	"strconv"
	"strings"

	"github.com/transplot/transplot/pkg/errors"
)

// Grammar keywords. Matching is case-sensitive, against the first
// whitespace-delimited token of a line.
const (
	kwUnits            = "UNITS"
	kwDieArea          = "DIEAREA"
	kwRowHeight        = "ROWHEIGHT"
	kwSiteWidth        = "SITEWIDTH"
	kwRows             = "ROWS"
	kwSites            = "SITES"
	kwTransistorOffset = "TRANSISTOROFFSET"
	kwTransistorBlock  = "TRANSISTORS" // version 1 block opener
	kwTransistor       = "TRANSISTOR"  // version 2 record
	kwPin              = "PIN"
	kwMacro            = "SDC"
	kwPath             = "PATH"

	// terminator is the only multi-word token sequence in either grammar.
	terminator = "END TRANSISTORS"
)

// splitLines splits input into logical lines. The final newline does not
// produce a trailing empty line; interior blank lines are preserved and will
// be rejected by both grammars as unknown lines.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// isTerminator reports whether the tokenized line is exactly "END TRANSISTORS".
func isTerminator(fields []string) bool {
	return len(fields) == 2 && fields[0] == "END" && fields[1] == "TRANSISTORS"
}

// parseIntField converts one token to an integer, reporting the line it came
// from on failure.
func parseIntField(n int, line, token string) (int, error) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidNumber,
			"line %d: invalid integer %q in line %q", n, token, line)
	}
	return v, nil
}

// parseKeyInt parses a "KEYWORD VALUE" line into its integer value.
func parseKeyInt(n int, line string, fields []string) (int, error) {
	if len(fields) != 2 {
		return 0, errors.New(errors.ErrCodeFieldCount,
			"line %d: expect 2 fields but found %d in line %q", n, len(fields), line)
	}
	return parseIntField(n, line, fields[1])
}

// parseDieArea parses a "DIEAREA xl yl xh yh" line. Exactly four integer
// components are required; no ordering constraint is enforced here.
func parseDieArea(n int, line string, fields []string) (*DieArea, error) {
	if len(fields) != 5 {
		return nil, errors.New(errors.ErrCodeFieldCount,
			"line %d: DIEAREA expects exactly 4 values but found %d in line %q",
			n, len(fields)-1, line)
	}
	vals := make([]int, 4)
	for i, token := range fields[1:] {
		v, err := parseIntField(n, line, token)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return &DieArea{XL: vals[0], YL: vals[1], XH: vals[2], YH: vals[3]}, nil
}

// parseTransistorFields parses the six value tokens of a transistor record:
// name, x, y, flipped, kind, group. In version 1 the record line has no
// keyword (offset 0); in version 2 the tokens follow "TRANSISTOR" (offset 1).
// The group field is always kept as a string, never coerced to an integer.
func parseTransistorFields(n int, line string, fields []string, offset int) (Transistor, error) {
	want := 6 + offset
	if len(fields) != want {
		return Transistor{}, errors.New(errors.ErrCodeFieldCount,
			"line %d: expect %d fields but found %d in line %q", n, want, len(fields), line)
	}
	f := fields[offset:]

	x, err := parseIntField(n, line, f[1])
	if err != nil {
		return Transistor{}, err
	}
	y, err := parseIntField(n, line, f[2])
	if err != nil {
		return Transistor{}, err
	}
	flipped, err := parseIntField(n, line, f[3])
	if err != nil {
		return Transistor{}, err
	}

	return Transistor{
		Name:    f[0],
		X:       x,
		Y:       y,
		Flipped: flipped,
		Kind:    f[4],
		Group:   f[5],
	}, nil
}
