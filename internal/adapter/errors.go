package adapter

import (
	"errors"

	"github.com/MKhiriev/go-deck-reader/internal/app"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNotModified is returned by GetState when the server answers 304 to
	// a conditional request: the cached value is still current.
	ErrNotModified = errors.New("state not modified")

	// ErrTokenExpired is returned before any network attempt when the stored
	// bearer token's exp claim has already passed.
	ErrTokenExpired = errors.New(app.MsgTokenIsExpired)
)
