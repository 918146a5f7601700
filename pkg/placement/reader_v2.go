package placement

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/transplot/transplot/pkg/errors"
)

// pathPairRE extracts "(x y)" coordinate pairs from a PATH line.
var pathPairRE = regexp.MustCompile(`\(\s*(\d+)\s+(\d+)\s*\)`)

// readerV2 parses the version-2 syntax. Every line is self-describing: the
// leading keyword selects a fixed-width record shape, with no block or
// counting state.
type readerV2 struct {
	model *Model
}

// ParseV2 parses text as version-2 syntax, failing fast on the first
// malformed line. A failed parse yields no model.
func ParseV2(text string) (*Model, error) {
	r := &readerV2{model: newModel(Version2)}
	for i, line := range splitLines(text) {
		if err := r.parseLine(i+1, line); err != nil {
			return nil, err
		}
	}
	return r.model, nil
}

func (r *readerV2) parseLine(n int, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return errors.New(errors.ErrCodeUnknownLine, "line %d: unknown line: %q", n, line)
	}

	switch fields[0] {
	case kwUnits:
		return r.setKeyInt(n, line, fields, &r.model.Units)
	case kwDieArea:
		area, err := parseDieArea(n, line, fields)
		if err != nil {
			return err
		}
		r.model.DieArea = area
		return nil
	case kwRowHeight:
		return r.setKeyInt(n, line, fields, &r.model.RowHeight)
	case kwSiteWidth:
		return r.setKeyInt(n, line, fields, &r.model.SiteWidth)
	case kwRows:
		return r.setKeyInt(n, line, fields, &r.model.NumRows)
	case kwSites:
		return r.setKeyInt(n, line, fields, &r.model.NumSites)
	case kwTransistorOffset:
		return r.setKeyInt(n, line, fields, &r.model.TransistorOffset)
	case kwTransistor:
		t, err := parseTransistorFields(n, line, fields, 1)
		if err != nil {
			return err
		}
		r.model.addTransistor(t)
		return nil
	case kwPin:
		return r.parsePin(n, line, fields)
	case kwMacro:
		return r.parseMacro(n, line, fields)
	case kwPath:
		return r.parsePath(line)
	default:
		return errors.New(errors.ErrCodeUnknownLine, "line %d: unknown line: %q", n, line)
	}
}

// parsePin parses "PIN name x y net".
func (r *readerV2) parsePin(n int, line string, fields []string) error {
	if len(fields) != 5 {
		return errors.New(errors.ErrCodeFieldCount,
			"line %d: expect 5 fields but found %d in line %q", n, len(fields), line)
	}
	x, err := parseIntField(n, line, fields[2])
	if err != nil {
		return err
	}
	y, err := parseIntField(n, line, fields[3])
	if err != nil {
		return err
	}
	r.model.Pins = append(r.model.Pins, Pin{
		Name: fields[1],
		X:    x,
		Y:    y,
		Net:  fields[4],
	})
	return nil
}

// parseMacro parses "SDC name macro x y width height".
func (r *readerV2) parseMacro(n int, line string, fields []string) error {
	if len(fields) != 7 {
		return errors.New(errors.ErrCodeFieldCount,
			"line %d: expect 7 fields but found %d in line %q", n, len(fields), line)
	}
	vals := make([]int, 4)
	for i, token := range fields[3:] {
		v, err := parseIntField(n, line, token)
		if err != nil {
			return err
		}
		vals[i] = v
	}
	r.model.Macros = append(r.model.Macros, Macro{
		Name:      fields[1],
		MacroName: fields[2],
		X:         vals[0],
		Y:         vals[1],
		Width:     vals[2],
		Height:    vals[3],
	})
	return nil
}

// parsePath extracts every "(x y)" pair from the line. A PATH line with no
// pairs yields an empty path; that is accepted, not an error.
func (r *readerV2) parsePath(line string) error {
	matches := pathPairRE.FindAllStringSubmatch(line, -1)
	path := make(Path, 0, len(matches))
	for _, m := range matches {
		// The pattern only admits digit runs, so Atoi cannot fail here.
		x, _ := strconv.Atoi(m[1])
		y, _ := strconv.Atoi(m[2])
		path = append(path, Point{X: x, Y: y})
	}
	r.model.Paths = append(r.model.Paths, path)
	return nil
}

func (r *readerV2) setKeyInt(n int, line string, fields []string, dst **int) error {
	v, err := parseKeyInt(n, line, fields)
	if err != nil {
		return err
	}
	*dst = intPtr(v)
	return nil
}
