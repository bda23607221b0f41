package client

import "errors"

var (
	ErrUnavailable = errors.New("registry unavailable")
	ErrRejected    = errors.New("registry rejected the request")
	ErrEmptyID     = errors.New("registry returned an empty NFT id")
)
