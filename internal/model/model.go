package model

import "time"

// Repository identifies a remote repository that can be exported.
type Repository struct {
	// ID is the user-chosen unique key for the record
	ID string `json:"id"`

	// UID is the internally assigned unique identifier
	UID string `json:"uid"`

	// Domain is the hosting domain (e.g., github.com or a Gitea host)
	Domain string `json:"domain"`

	// Owner is the repository owner or organization
	Owner string `json:"owner"`

	// Name is the repository name
	Name string `json:"name"`

	// DefaultBranch is the branch exported when none is requested
	DefaultBranch string `json:"default_branch,omitempty"`

	// Token is an optional access token; overrides all other token sources
	Token string `json:"token,omitempty"`

	// CreatedAt is when the record was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the record was last modified
	UpdatedAt time.Time `json:"updated_at"`
}

// CloneURL returns the https clone URL for the repository. When token is
// non-empty it is embedded as userinfo so git can authenticate the request.
func (r *Repository) CloneURL(token string) string {
	if token != "" {
		return "https://" + token + "@" + r.Domain + "/" + r.Owner + "/" + r.Name + ".git"
	}

	return "https://" + r.Domain + "/" + r.Owner + "/" + r.Name + ".git"
}

// Slug returns the owner/name form used in display and artifact headers.
func (r *Repository) Slug() string {
	return r.Owner + "/" + r.Name
}
