package utils

import "errors"

var ErrInvalidRequest = errors.New("invalid request")
var ErrNotFound = errors.New("course not found")
var ErrCatalogUnavailable = errors.New("course catalog unavailable")
var ErrMalformedMeetingTime = errors.New("malformed meeting time")
