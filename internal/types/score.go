// Package types provides type definitions for structured data used throughout the resume-insight system.
package types

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Score is a 1-10 rating as it arrives from the model. Model output is
// loose about numeric types: integers, floats, and numeric strings all
// occur in practice. Decoding accepts all of them (floats truncate toward
// zero) and never fails; anything non-numeric leaves the score unset so
// normalization can apply the neutral default instead of rejecting the
// whole document.
type Score struct {
	value   int
	present bool
}

// ScoreOf returns a Score carrying the given value.
func ScoreOf(v int) Score {
	return Score{value: v, present: true}
}

// Int returns the numeric value. Zero when unset.
func (s Score) Int() int {
	return s.value
}

// Present reports whether a usable numeric value was decoded.
func (s Score) Present() bool {
	return s.present
}

// MarshalJSON encodes the score as a bare integer.
func (s Score) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(s.value)), nil
}

// UnmarshalJSON decodes a number, a numeric string, or anything else.
// Only the first two produce a present score.
func (s *Score) UnmarshalJSON(data []byte) error {
	*s = Score{}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*s = Score{value: int(v), present: true}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			*s = Score{value: int(f), present: true}
		}
	}
	return nil
}

// Years is a year count with the same decoding tolerance as Score:
// numbers and numeric strings decode, anything else is left unset.
type Years struct {
	value   float64
	present bool
}

// YearsOf returns a Years carrying the given value.
func YearsOf(v float64) Years {
	return Years{value: v, present: true}
}

// Float returns the numeric value. Zero when unset.
func (y Years) Float() float64 {
	return y.value
}

// Present reports whether a usable numeric value was decoded.
func (y Years) Present() bool {
	return y.present
}

// MarshalJSON encodes the value as a bare number.
func (y Years) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(y.value, 'f', -1, 64)), nil
}

// UnmarshalJSON decodes a number or a numeric string.
func (y *Years) UnmarshalJSON(data []byte) error {
	*y = Years{}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*y = Years{value: v, present: true}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			*y = Years{value: f, present: true}
		}
	}
	return nil
}
