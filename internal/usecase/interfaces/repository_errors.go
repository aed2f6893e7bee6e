package interfaces

import "errors"

// ErrConditionFailed is returned by repositories when a conditional write
// loses: the record changed (or already exists) since it was read.
var ErrConditionFailed = errors.New("conditional write failed")
