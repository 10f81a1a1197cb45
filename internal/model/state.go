package model

// State holds the last-used markers consulted by the no-argument
// quick-start path. It is loaded once per run and written once after a
// successful export.
type State struct {
	// LastProfile is the profile name of the most recent export
	LastProfile string `json:"last_profile,omitempty"`

	// LastRepo is the repository record id of the most recent export
	LastRepo string `json:"last_repo,omitempty"`
}
