package types

// ------------------------------
// External directory entities
// ------------------------------

// RawUser is one element of the directory's "results" array. Only the fields
// the board consumes are decoded; name and picture are pointers so a missing
// object can be told apart from empty strings.
type RawUser struct {
	Name    *RawName    `json:"name"`
	Email   string      `json:"email"`
	Picture *RawPicture `json:"picture"`
}

// RawName holds the nested name fields.
type RawName struct {
	Title string `json:"title,omitempty"`
	First string `json:"first"`
	Last  string `json:"last"`
}

// RawPicture holds the avatar URL variants.
type RawPicture struct {
	Large     string `json:"large"`
	Medium    string `json:"medium,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}
