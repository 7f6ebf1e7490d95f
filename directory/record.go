package directory

import (
	"fmt"

	"github.com/as3d12/instaboard/client"
)

// UserRecord is one directory entry as shown on the board.
type UserRecord struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	PictureURL string `json:"pictureUrl"`
}

// Normalize maps a raw batch to UserRecords. IDs are baseOffset+position+1, so
// a fresh load (baseOffset 0) yields 1..n and an append continues the sequence.
// A record without its name or picture object fails the whole batch with an
// error matching client.ErrNetwork.
func Normalize(raw []client.RawUser, baseOffset int) ([]UserRecord, error) {
	out := make([]UserRecord, 0, len(raw))
	for i, r := range raw {
		if r.Name == nil {
			return nil, fmt.Errorf("%w: record %d has no name", client.ErrNetwork, i)
		}
		if r.Picture == nil {
			return nil, fmt.Errorf("%w: record %d has no picture", client.ErrNetwork, i)
		}
		out = append(out, UserRecord{
			ID:         baseOffset + i + 1,
			Name:       r.Name.First + " " + r.Name.Last,
			Email:      r.Email,
			PictureURL: r.Picture.Large,
		})
	}
	return out, nil
}
