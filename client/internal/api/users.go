package api

import (
	"context"
	"encoding/json"
	"net/http"

	clienterrors "github.com/as3d12/instaboard/client/internal/errors"
	"github.com/as3d12/instaboard/client/internal/types"
)

const fetchUsersOp = "fetch users"

// FetchUsers issues exactly one GET for count records and returns the raw
// batch. Every failure except a non-positive count is a *NetworkError,
// including an unusable endpoint.
func FetchUsers(ctx context.Context, httpClient *http.Client, endpoint string, count int) ([]types.RawUser, error) {
	if err := types.ValidateCount(count); err != nil {
		return nil, err
	}
	url, err := usersURL(endpoint, count)
	if err != nil {
		return nil, clienterrors.NewTransportError(fetchUsersOp, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, clienterrors.NewTransportError(fetchUsersOp, err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, clienterrors.NewTransportError(fetchUsersOp, err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, clienterrors.NewTransportError(fetchUsersOp, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, clienterrors.NewStatusError(fetchUsersOp, resp.StatusCode)
	}

	var body types.UsersResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, clienterrors.NewDecodeError(fetchUsersOp, err)
	}
	if err := body.Validate(); err != nil {
		return nil, clienterrors.NewDecodeError(fetchUsersOp, err)
	}
	return body.Users(), nil
}
