package service

import "errors"

// ErrForbidden is returned when a user acts on a project they are not
// assigned to.
var ErrForbidden = errors.New("forbidden")
