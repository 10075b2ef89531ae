package schedule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rota-golang/internal/solver"
)

func newCompositor(t *testing.T, raw map[string]float64, cfg Config) *Compositor {
	t.Helper()
	c, err := NewCompositor(solver.Decode(raw), cfg)
	require.NoError(t, err)
	return c
}

// April 2019: 30 days, starts on a Monday.
func TestCompose_April2019(t *testing.T) {
	raw := map[string]float64{
		"X_1_1_1_1": 1.0, // person 1, day 1, section 1, day shift
		"h_1_2":     1.0, // person 1 on leave day 2
	}
	c := newCompositor(t, raw, Config{
		Year: 2019, Month: 4,
		NumPersonnel: 1, NumSections: 2, NumShifts: 2,
	})

	assert.Equal(t, 5, c.RowsPerPerson()) // ceil(30/7)
	assert.Equal(t, 30, c.NumDays())

	roster := c.Compose()

	assert.Equal(t, "1(1)", roster.Grid["Monday"][0])
	assert.Equal(t, "X", roster.Grid["Tuesday"][0])

	// Days 3..30 are empty.
	for _, day := range Weekdays {
		for row, cell := range roster.Grid[day] {
			if day == "Monday" && row == 0 || day == "Tuesday" && row == 0 {
				continue
			}
			assert.Empty(t, cell, "%s row %d", day, row)
		}
	}

	assert.Equal(t, map[int]int{1: 1}, roster.DayShifts)
	assert.Empty(t, roster.NightShifts)
}

// September 2019 starts on a Sunday: the whole first week except the
// Sunday column stays empty.
func TestCompose_SundayStart(t *testing.T) {
	raw := map[string]float64{
		"X_1_1_3_2": 1.0,
		"X_2_1_1_1": 1.0,
	}
	c := newCompositor(t, raw, Config{
		Year: 2019, Month: 9,
		NumPersonnel: 2, NumSections: 3, NumShifts: 2,
	})

	assert.Equal(t, 6, c.RowsPerPerson()) // ceil((30+6)/7)

	roster := c.Compose()

	// Day 1 lands in the Sunday column for both persons.
	assert.Equal(t, "3(2)", roster.Grid["Sunday"][0])
	assert.Equal(t, "1(1)", roster.Grid["Sunday"][6])
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"} {
		assert.Empty(t, roster.Grid[day][0])
		assert.Empty(t, roster.Grid[day][6])
	}

	// Day 2 is the Monday of the second week-row.
	assert.Equal(t, map[int]int{1: 1}, roster.NightShifts)
	assert.Equal(t, map[int]int{2: 1}, roster.DayShifts)
}

// February 2021 starts on a Monday and its 28 days fill exactly four
// week-rows, ending in the Sunday column.
func TestCompose_ExactWeeks(t *testing.T) {
	raw := map[string]float64{"X_1_28_2_1": 1.0}
	c := newCompositor(t, raw, Config{
		Year: 2021, Month: 2,
		NumPersonnel: 1, NumSections: 2, NumShifts: 2,
	})

	assert.Equal(t, 4, c.RowsPerPerson())

	roster := c.Compose()
	assert.Equal(t, "2(1)", roster.Grid["Sunday"][3])
}

func TestCompose_GridCompleteness(t *testing.T) {
	c := newCompositor(t, nil, Config{
		Year: 2019, Month: 4,
		NumPersonnel: 80, NumSections: 7, NumShifts: 2,
	})

	roster := c.Compose()

	total := 0
	for _, day := range Weekdays {
		assert.Len(t, roster.Grid[day], 80*roster.RowsPerPerson)
		total += len(roster.Grid[day])
	}
	assert.Equal(t, 80*roster.RowsPerPerson*7, total)
}

// Every day of the month lands in exactly one populated cell per person
// when every (person, day) has an active assignment.
func TestCompose_EveryDayPlacedOnce(t *testing.T) {
	raw := make(map[string]float64)
	for p := 1; p <= 3; p++ {
		for d := 1; d <= 31; d++ {
			raw[assignName(p, d, 1, 1)] = 1.0
		}
	}
	c := newCompositor(t, raw, Config{
		Year: 2019, Month: 5, // May 2019: 31 days, starts Wednesday
		NumPersonnel: 3, NumSections: 1, NumShifts: 2,
	})

	roster := c.Compose()

	for p := 0; p < 3; p++ {
		populated := 0
		for _, day := range Weekdays {
			for r := 0; r < roster.RowsPerPerson; r++ {
				if roster.Grid[day][p*roster.RowsPerPerson+r] != "" {
					populated++
				}
			}
		}
		assert.Equal(t, 31, populated, "person %d", p+1)
	}
}

func TestCompose_LeavePrecedence(t *testing.T) {
	raw := map[string]float64{
		"h_1_10":     1.0,
		"X_1_10_4_2": 1.0, // infeasible: shift on a leave day
	}
	c := newCompositor(t, raw, Config{
		Year: 2019, Month: 4,
		NumPersonnel: 1, NumSections: 7, NumShifts: 2,
	})

	roster := c.Compose()

	// Leave wins before any shift content exists; the blocked shift is
	// neither rendered nor tallied.
	assert.Equal(t, "X", roster.Grid["Wednesday"][1]) // Apr 10 2019
	assert.Empty(t, roster.NightShifts)
}

func TestCompose_ConcatenationOrder(t *testing.T) {
	raw := map[string]float64{
		"X_1_1_2_1": 1.0,
		"X_1_1_1_2": 1.0,
		"X_1_1_1_1": 1.0,
	}
	c := newCompositor(t, raw, Config{
		Year: 2019, Month: 4,
		NumPersonnel: 1, NumSections: 2, NumShifts: 2,
	})

	roster := c.Compose()

	// Section-major, shift-minor.
	assert.Equal(t, "1(1)1(2)2(1)", roster.Grid["Monday"][0])
	assert.Equal(t, map[int]int{1: 2}, roster.DayShifts)
	assert.Equal(t, map[int]int{1: 1}, roster.NightShifts)
}

func TestCompose_Tallies(t *testing.T) {
	raw := map[string]float64{
		"X_1_1_1_1": 1.0,
		"X_1_3_2_1": 1.0,
		"X_1_5_1_2": 1.0,
		"X_2_1_7_2": 1.0,
		"X_2_2_7_2": 0.2, // rounds to 0, inactive
	}
	c := newCompositor(t, raw, Config{
		Year: 2019, Month: 4,
		NumPersonnel: 2, NumSections: 7, NumShifts: 2,
	})

	roster := c.Compose()

	assert.Equal(t, map[int]int{1: 2}, roster.DayShifts)
	assert.Equal(t, map[int]int{1: 1, 2: 1}, roster.NightShifts)
}

// Shifts past index 2 render but are never tallied.
func TestCompose_ThirdShiftUntallied(t *testing.T) {
	raw := map[string]float64{"X_1_1_1_3": 1.0}
	c := newCompositor(t, raw, Config{
		Year: 2019, Month: 4,
		NumPersonnel: 1, NumSections: 1, NumShifts: 3,
	})

	roster := c.Compose()

	assert.Equal(t, "1(3)", roster.Grid["Monday"][0])
	assert.Empty(t, roster.DayShifts)
	assert.Empty(t, roster.NightShifts)
}

func TestCompose_Idempotent(t *testing.T) {
	raw := map[string]float64{
		"X_1_1_1_1":  1.0,
		"X_2_14_3_2": 1.0,
		"h_2_2":      1.0,
	}
	c := newCompositor(t, raw, Config{
		Year: 2019, Month: 4,
		NumPersonnel: 2, NumSections: 3, NumShifts: 2,
	})

	first := c.Compose()
	second := c.Compose()

	assert.Equal(t, first, second)

	// Fresh state per call, not shared.
	first.Grid["Monday"][0] = "mutated"
	assert.NotEqual(t, first.Grid["Monday"][0], second.Grid["Monday"][0])
}

func TestNewCompositor_ConfigErrors(t *testing.T) {
	vars := solver.Decode(nil)

	cases := []struct {
		name string
		cfg  Config
	}{
		{"month zero", Config{Year: 2019, Month: 0, NumPersonnel: 1, NumSections: 1, NumShifts: 1}},
		{"month thirteen", Config{Year: 2019, Month: 13, NumPersonnel: 1, NumSections: 1, NumShifts: 1}},
		{"negative year", Config{Year: -1, Month: 4, NumPersonnel: 1, NumSections: 1, NumShifts: 1}},
		{"no personnel", Config{Year: 2019, Month: 4, NumPersonnel: 0, NumSections: 1, NumShifts: 1}},
		{"no sections", Config{Year: 2019, Month: 4, NumPersonnel: 1, NumSections: 0, NumShifts: 1}},
		{"no shifts", Config{Year: 2019, Month: 4, NumPersonnel: 1, NumSections: 1, NumShifts: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCompositor(vars, tc.cfg)
			assert.Error(t, err)

			var cfgErr *ConfigError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func assignName(p, d, k, l int) string {
	return fmt.Sprintf("X_%d_%d_%d_%d", p, d, k, l)
}
