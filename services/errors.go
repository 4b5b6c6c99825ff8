package services

import "errors"

// ErrPostNotFound signals that no post has the requested id.
var ErrPostNotFound = errors.New("post not found")
