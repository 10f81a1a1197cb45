package core

import "fmt"

// CloneError indicates the initial clone of a repository failed.
type CloneError struct {
	URL string
	Err error
}

func (e *CloneError) Error() string {
	return fmt.Sprintf("clone failed for %s: %v", e.URL, e.Err)
}

func (e *CloneError) Unwrap() error {
	return e.Err
}

// UpdateError indicates an update-in-place of an existing working copy failed.
type UpdateError struct {
	Path string
	Err  error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("update failed for %s: %v", e.Path, e.Err)
}

func (e *UpdateError) Unwrap() error {
	return e.Err
}
