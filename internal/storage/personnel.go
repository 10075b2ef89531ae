package storage

// Personnel is the display label for one person index in the exported
// sheet. Indices without a row fall back to "P<index>".
type Personnel struct {
	Index  int    `json:"index"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}
