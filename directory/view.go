package directory

// View is a read-only snapshot of a State. Slices are copies; callers may keep
// or modify them freely.
type View struct {
	Phase           Phase        `json:"phase"`
	ErrorMessage    string       `json:"errorMessage,omitempty"`
	Records         []UserRecord `json:"records"`
	Query           string       `json:"query"`
	FilteredRecords []UserRecord `json:"filteredRecords"`

	// Generation counts fresh loads applied; it changes whenever ids restart at 1.
	Generation uint64 `json:"generation"`
}

// FilteredCount is the number of records matching the query, possibly zero.
func (v View) FilteredCount() int { return len(v.FilteredRecords) }

// HasQuery reports whether any query text is set, whitespace included.
func (v View) HasQuery() bool { return v.Query != "" }

func cloneRecords(rs []UserRecord) []UserRecord {
	out := make([]UserRecord, len(rs))
	copy(out, rs)
	return out
}
