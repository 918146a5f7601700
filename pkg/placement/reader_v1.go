package placement

import (
	"strings"

	"github.com/transplot/transplot/pkg/errors"
)

// readerV1 parses the version-1 syntax: header lines plus a counted
// transistor block. It is a two-state machine; inBlock is false while header
// keywords are expected and true between "TRANSISTORS <n>" and the line
// following the n-th record, which must be exactly "END TRANSISTORS".
type readerV1 struct {
	model    *Model
	inBlock  bool
	expected int // declared record count of the open block
	seen     int // records parsed so far in the open block
}

// ParseV1 parses text as version-1 syntax. It fails fast on the first
// malformed line and on an unterminated transistor block at end of input; a
// failed parse yields no model.
func ParseV1(text string) (*Model, error) {
	r := &readerV1{model: newModel(Version1)}
	for i, line := range splitLines(text) {
		if err := r.parseLine(i+1, line); err != nil {
			return nil, err
		}
	}
	if r.inBlock {
		return nil, errors.New(errors.ErrCodeUnterminatedBlock,
			"transistor block with %d declared records never closed with %q",
			r.expected, terminator)
	}
	return r.model, nil
}

func (r *readerV1) parseLine(n int, line string) error {
	if r.inBlock {
		return r.parseBlockLine(n, line)
	}
	return r.parseHeaderLine(n, line)
}

// parseBlockLine handles a line inside an open transistor block.
func (r *readerV1) parseBlockLine(n int, line string) error {
	fields := strings.Fields(line)

	if r.seen >= r.expected {
		if isTerminator(fields) {
			r.inBlock = false
			return nil
		}
		return errors.New(errors.ErrCodeUnexpectedLine,
			"line %d: expect %q but found %q", n, terminator, line)
	}

	// The terminator before the declared count is a block count mismatch,
	// not a malformed record.
	if isTerminator(fields) {
		return errors.New(errors.ErrCodeUnexpectedLine,
			"line %d: %q after %d of %d declared records", n, terminator, r.seen, r.expected)
	}

	t, err := parseTransistorFields(n, line, fields, 0)
	if err != nil {
		return err
	}
	r.model.addTransistor(t)
	r.seen++
	return nil
}

// parseHeaderLine handles a line outside any block.
func (r *readerV1) parseHeaderLine(n int, line string) error {
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
	case kwTransistorBlock:
		count, err := parseKeyInt(n, line, fields)
		if err != nil {
			return err
		}
		r.inBlock = true
		r.expected = count
		r.seen = 0
		return nil
	default:
		return errors.New(errors.ErrCodeUnknownLine, "line %d: unknown line: %q", n, line)
	}
}

func (r *readerV1) setKeyInt(n int, line string, fields []string, dst **int) error {
	v, err := parseKeyInt(n, line, fields)
	if err != nil {
		return err
	}
	*dst = intPtr(v)
	return nil
}
