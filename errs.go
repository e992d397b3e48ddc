package jdom

import "errors"

var (
	// ErrRoot is returned when a document payload has a root that is
	// neither an array nor an object.
	ErrRoot = errors.New("jdom: document root must be an array or object")
)
