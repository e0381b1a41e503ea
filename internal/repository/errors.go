// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrForbidden indicates that the current user attempted to
// touch a row owned by someone else, while sql.ErrNoRows passes through
// untouched when a lookup finds nothing.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation
// on a resource they do not own. Handlers should translate this
// into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrEmailExists is returned by UserRepo.Create when the email is
// already registered. Handlers should translate this into an HTTP
// 409 response.
var ErrEmailExists = errors.New("email already exists")
