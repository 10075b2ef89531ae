// Package solver decodes the flat variable map produced by the external
// assignment optimizer into typed lookups. The solver emits three
// families of variable names:
//
//	X_<person>_<day>_<section>_<shift>  shift assignment amount
//	h_<person>_<day>                    leave amount
//	d_*                                 model-internal, not used here
//
// Decoding happens once at the boundary; the composition loop only ever
// sees typed keys.
package solver

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type AssignmentKey struct {
	Person  int
	Day     int
	Section int
	Shift   int
}

type LeaveKey struct {
	Person int
	Day    int
}

// DecodeError marks a variable whose name matches a recognized family
// but carries indices that are not positive integers.
type DecodeError struct {
	Key    string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %q: %s", e.Key, e.Reason)
}

// Variables holds the decoded solution. Lookups return the value
// rounded to the nearest integer, and 0 for any combination the solver
// did not emit — a sparse solution is valid input, absent means
// inactive.
type Variables struct {
	assignments map[AssignmentKey]float64
	leaves      map[LeaveKey]float64

	// Skipped lists variable names dropped by the lenient decode.
	Skipped []string
}

// Assignment returns the rounded amount for (person, day, section, shift).
func (v *Variables) Assignment(person, day, section, shift int) int {
	return round(v.assignments[AssignmentKey{person, day, section, shift}])
}

// Leave returns the rounded leave amount for (person, day).
func (v *Variables) Leave(person, day int) int {
	return round(v.leaves[LeaveKey{person, day}])
}

func round(val float64) int {
	return int(math.Round(val))
}

// Decode parses the raw solver output leniently: malformed keys inside
// the X/h families are skipped and recorded in Skipped, unrecognized
// families are ignored. This mirrors how the optimizer's own tooling
// treats its output and never fails.
func Decode(raw map[string]float64) *Variables {
	vars, _ := decode(raw, false)
	return vars
}

// DecodeStrict is the fail-fast variant: the first malformed key in a
// recognized family aborts with a *DecodeError.
func DecodeStrict(raw map[string]float64) (*Variables, error) {
	return decode(raw, true)
}

func decode(raw map[string]float64, strict bool) (*Variables, error) {
	vars := &Variables{
		assignments: make(map[AssignmentKey]float64),
		leaves:      make(map[LeaveKey]float64),
	}

	for name, value := range raw {
		parts := strings.Split(name, "_")
		var err *DecodeError

		switch parts[0] {
		case "X":
			err = decodeAssignment(name, parts, value, vars)
		case "h":
			err = decodeLeave(name, parts, value, vars)
		default:
			// d_* and anything else the model emits is not ours.
			continue
		}

		if err != nil {
			if strict {
				return nil, err
			}
			vars.Skipped = append(vars.Skipped, name)
		}
	}

	return vars, nil
}

func decodeAssignment(name string, parts []string, value float64, vars *Variables) *DecodeError {
	if len(parts) != 5 {
		return &DecodeError{Key: name, Reason: "expected 4 indices"}
	}

	idx, err := indices(parts[1:])
	if err != nil {
		return &DecodeError{Key: name, Reason: err.Error()}
	}

	vars.assignments[AssignmentKey{idx[0], idx[1], idx[2], idx[3]}] = value
	return nil
}

func decodeLeave(name string, parts []string, value float64, vars *Variables) *DecodeError {
	if len(parts) != 3 {
		return &DecodeError{Key: name, Reason: "expected 2 indices"}
	}

	idx, err := indices(parts[1:])
	if err != nil {
		return &DecodeError{Key: name, Reason: err.Error()}
	}

	vars.leaves[LeaveKey{idx[0], idx[1]}] = value
	return nil
}

func indices(fields []string) ([]int, error) {
	idx := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("index %q is not an integer", field)
		}
		if n < 1 {
			return nil, fmt.Errorf("index %d out of range", n)
		}
		idx[i] = n
	}
	return idx, nil
}
