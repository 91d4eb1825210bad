package repositories

import "errors"

// ErrNotFound is returned by repositories when no record matches the
// query. For task lookups this covers both a missing ID and an ID
// owned by a different user; callers cannot tell the two apart.
var ErrNotFound = errors.New("record not found")
