package client

import "github.com/as3d12/instaboard/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	RawUser       = types.RawUser
	RawName       = types.RawName
	RawPicture    = types.RawPicture
	UsersResponse = types.UsersResponse
)
