package types

// ------------------------------
// Response Types
// ------------------------------

// UsersResponse is the envelope returned by the directory endpoint.
// Results is a pointer so an absent array is distinguishable from an empty one.
type UsersResponse struct {
	Results *[]RawUser    `json:"results"`
	Info    *ResponseInfo `json:"info,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// ResponseInfo echoes the request parameters.
type ResponseInfo struct {
	Seed    string `json:"seed,omitempty"`
	Results int    `json:"results"`
	Page    int    `json:"page"`
	Version string `json:"version,omitempty"`
}
