package storage

import "time"

// SolutionRun is one uploaded solver solution together with the model
// dimensions it was solved for.
type SolutionRun struct {
	ID           int64     `json:"id"`
	Year         int       `json:"year"`
	Month        int       `json:"month"`
	NumPersonnel int       `json:"num_personnel"`
	NumSections  int       `json:"num_sections"`
	NumShifts    int       `json:"num_shifts"`
	CreatedAt    time.Time `json:"created_at"`
}
