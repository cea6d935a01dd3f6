package application

import "errors"

var ErrNotFound = errors.New("not found")
var ErrBadRequest = errors.New("bad request")
var ErrInvalidSignature = errors.New("invalid signature")
