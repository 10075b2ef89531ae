// Package schedule turns a decoded solver solution into a week-major
// calendar grid and per-person shift tallies, ready for tabular export.
package schedule

import (
	"fmt"
	"rota-golang/internal/solver"
	"strings"
	"time"
)

// Weekdays is the grid storage key order, Monday first. The same list
// drives the month traversal, but traversal columns and storage keys
// are kept as separate concepts: a column index walks through the
// month, weekdayName maps it to the storage key.
var Weekdays = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func weekdayName(col int) string {
	return Weekdays[col]
}

// Grid maps a weekday name to the column of rendered cells. Each slice
// holds NumPersonnel*RowsPerPerson entries; person p (1-based) owns
// indices (p-1)*RowsPerPerson through p*RowsPerPerson-1.
type Grid map[string][]string

// Roster is the composed output handed to renderers. The tally maps
// carry no entry for a person with zero tallied shifts.
type Roster struct {
	Grid          Grid        `json:"grid"`
	DayShifts     map[int]int `json:"day_shifts"`
	NightShifts   map[int]int `json:"night_shifts"`
	RowsPerPerson int         `json:"rows_per_person"`
	NumPersonnel  int         `json:"num_personnel"`
}

// Config fixes the dimensions of one composition.
type Config struct {
	Year         int
	Month        int
	NumPersonnel int
	NumSections  int
	NumShifts    int
}

// ConfigError reports a dimension that cannot produce a well-formed grid.
type ConfigError struct {
	Field string
	Value int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %d", e.Field, e.Value)
}

func (c Config) validate() error {
	switch {
	case c.Month < 1 || c.Month > 12:
		return &ConfigError{Field: "month", Value: c.Month}
	case c.Year < 0:
		return &ConfigError{Field: "year", Value: c.Year}
	case c.NumPersonnel < 1:
		return &ConfigError{Field: "num_personnel", Value: c.NumPersonnel}
	case c.NumSections < 1:
		return &ConfigError{Field: "num_sections", Value: c.NumSections}
	case c.NumShifts < 1:
		return &ConfigError{Field: "num_shifts", Value: c.NumShifts}
	}
	return nil
}

// Compositor lays a month out week by week for every person and renders
// each (person, day) cell from the solved variables.
type Compositor struct {
	vars *solver.Variables
	cfg  Config

	firstWeekday  int // weekday of day 1, Monday=0
	numDays       int
	rowsPerPerson int
}

func NewCompositor(vars *solver.Variables, cfg Config) (*Compositor, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	first := time.Date(cfg.Year, time.Month(cfg.Month), 1, 0, 0, 0, 0, time.UTC)
	firstWeekday := (int(first.Weekday()) + 6) % 7
	numDays := first.AddDate(0, 1, -1).Day()

	return &Compositor{
		vars:          vars,
		cfg:           cfg,
		firstWeekday:  firstWeekday,
		numDays:       numDays,
		rowsPerPerson: (numDays + firstWeekday + 6) / 7,
	}, nil
}

// RowsPerPerson is the block height renderers need to locate person
// boundaries in the grid.
func (c *Compositor) RowsPerPerson() int {
	return c.rowsPerPerson
}

func (c *Compositor) NumDays() int {
	return c.numDays
}

// Compose builds the grid and tallies from scratch. Every call
// allocates fresh state, so concurrent compositions never share
// anything mutable.
func (c *Compositor) Compose() *Roster {
	grid := c.emptyGrid()
	dayShifts := make(map[int]int)
	nightShifts := make(map[int]int)

	for p := 0; p < c.cfg.NumPersonnel; p++ {
		day := 1
		for row := 0; row < c.rowsPerPerson && day <= c.numDays; row++ {
			for col := 0; col < 7; col++ {
				// Cells before the 1st in the month's opening week stay empty.
				if row == 0 && col < c.firstWeekday {
					continue
				}
				if day > c.numDays {
					break
				}
				cell := c.cellValue(p+1, day, dayShifts, nightShifts)
				grid[weekdayName(col)][p*c.rowsPerPerson+row] = cell
				day++
			}
		}
	}

	return &Roster{
		Grid:          grid,
		DayShifts:     dayShifts,
		NightShifts:   nightShifts,
		RowsPerPerson: c.rowsPerPerson,
		NumPersonnel:  c.cfg.NumPersonnel,
	}
}

func (c *Compositor) emptyGrid() Grid {
	grid := make(Grid, len(Weekdays))
	for _, day := range Weekdays {
		grid[day] = make([]string, c.cfg.NumPersonnel*c.rowsPerPerson)
	}
	return grid
}

// cellValue renders one (person, day) cell. Sections iterate outer,
// shifts inner, which fixes the token order when the solver activates
// more than one assignment on the same day. Leave is checked on every
// iteration but only wins while the cell is still empty; when it wins
// the cell is exactly "X" and nothing else is rendered or tallied.
func (c *Compositor) cellValue(person, day int, dayShifts, nightShifts map[int]int) string {
	var cell strings.Builder

	for k := 1; k <= c.cfg.NumSections; k++ {
		for l := 1; l <= c.cfg.NumShifts; l++ {
			if c.vars.Leave(person, day) > 0 && cell.Len() == 0 {
				return "X"
			}
			if c.vars.Assignment(person, day, k, l) > 0 {
				// Tallies are keyed by shift index; anything past the
				// night shift renders but is not counted.
				switch l {
				case 1:
					dayShifts[person]++
				case 2:
					nightShifts[person]++
				}
				fmt.Fprintf(&cell, "%d(%d)", k, l)
			}
		}
	}

	return cell.String()
}
