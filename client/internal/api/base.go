package api

import (
	"fmt"
	"net/url"
	"strconv"
)

// usersURL appends the result count to the endpoint, keeping any query
// parameters the caller already configured (seed, nat, inc, ...).
func usersURL(endpoint string, count int) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("endpoint %q is not an absolute URL", endpoint)
	}
	q := u.Query()
	q.Set("results", strconv.Itoa(count))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
