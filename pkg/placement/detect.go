package placement

import (
	"fmt"
	"os"

	"github.com/transplot/transplot/pkg/errors"
)

// DetectionError records why each syntax version rejected the input. It is
// the cause of every ErrCodeDetectFailed error, reachable with errors.As.
type DetectionError struct {
	V1Err error
	V2Err error
}

// Error implements the error interface.
func (e *DetectionError) Error() string {
	return fmt.Sprintf("v1: %v; v2: %v", e.V1Err, e.V2Err)
}

// Unwrap exposes both rejection errors to errors.Is/As.
func (e *DetectionError) Unwrap() []error {
	return []error{e.V1Err, e.V2Err}
}

// Parse parses a placement file, detecting the syntax version by trial: a
// full version-1 parse of the entire input, then a full version-2 parse from
// scratch when the first attempt fails. Partial state from a failed attempt
// is never reused, and an input valid under both syntaxes resolves to the
// version-1 result. When both attempts fail the returned error carries both
// rejections.
//
// On success the returned model is fully populated; Parse never returns a
// partial model.
func Parse(text string) (*Model, error) {
	model, v1Err := ParseV1(text)
	if v1Err == nil {
		return model, nil
	}

	model, v2Err := ParseV2(text)
	if v2Err == nil {
		return model, nil
	}

	return nil, errors.Wrap(errors.ErrCodeDetectFailed,
		&DetectionError{V1Err: v1Err, V2Err: v2Err},
		"input matches no known placement syntax")
}

// ParseFile reads path and parses its contents with [Parse].
func ParseFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "placement file %q not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %q", path)
	}
	return Parse(string(data))
}
