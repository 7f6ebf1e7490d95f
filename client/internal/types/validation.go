package types

import "fmt"

// ValidateCount rejects non-positive batch sizes before any request is made.
func ValidateCount(count int) error {
	if count <= 0 {
		return fmt.Errorf("count must be > 0, got %d", count)
	}
	return nil
}

// Validate checks the envelope carries a results array and no API error.
func (r *UsersResponse) Validate() error {
	if r.Error != "" {
		return fmt.Errorf("directory error: %s", r.Error)
	}
	if r.Results == nil {
		return fmt.Errorf("response has no results array")
	}
	return nil
}

// Users returns the decoded batch; nil-safe.
func (r *UsersResponse) Users() []RawUser {
	if r == nil || r.Results == nil {
		return nil
	}
	return *r.Results
}
