package presenter

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidKeys       = errors.New("invalid presenter keys")
	ErrUnknownPreset     = errors.New("unknown presenter preset")
	ErrUnsupportedSource = errors.New("unsupported presenter source")
)

// InvalidKeysError is returned when Only or Except name keys that are neither
// in the catalog nor in the supplemental fields.
type InvalidKeysError struct {
	Method string   // "only" or "except"
	Keys   []string // offending keys, in the order they were given
}

func (e *InvalidKeysError) Error() string {
	noun := "keys are"
	if len(e.Keys) == 1 {
		noun = "key is"
	}
	return fmt.Sprintf("%s: invalid keys passed to %s(); the invalid %s: %s",
		ErrInvalidKeys, e.Method, noun, joinKeys(e.Keys))
}

func (e *InvalidKeysError) Unwrap() error { return ErrInvalidKeys }

// UnknownPresetError is returned by Preset when the presenter has no preset
// registered under the requested name.
type UnknownPresetError struct {
	Name   string // requested preset name
	Method string // conventional method name, e.g. presetSummary
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("%s: there is no preset with the name %q (%s)", ErrUnknownPreset, e.Name, e.Method)
}

func (e *UnknownPresetError) Unwrap() error { return ErrUnknownPreset }

// joinKeys renders "a", "a and b", "a, b and c".
func joinKeys(keys []string) string {
	switch len(keys) {
	case 0:
		return ""
	case 1:
		return keys[0]
	default:
		return strings.Join(keys[:len(keys)-1], ", ") + " and " + keys[len(keys)-1]
	}
}
