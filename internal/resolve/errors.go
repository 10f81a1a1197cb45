package resolve

import "fmt"

// MissingFieldError indicates a required profile field is absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("profile is missing required field: %s", e.Field)
}

// RepoNotFoundError indicates the requested repository id has no record.
type RepoNotFoundError struct {
	ID string
}

func (e *RepoNotFoundError) Error() string {
	return fmt.Sprintf("repository not found: %s", e.ID)
}

// ProfileNotFoundError indicates the requested profile does not exist.
type ProfileNotFoundError struct {
	Name string
}

func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("profile not found: %s", e.Name)
}
