// Package rawurl builds raw-content URL prefixes for hosted repositories.
package rawurl

import "strings"

// Prefix returns the raw-content URL prefix for the repository at
// domain/owner/name on branch. GitHub domains use the dedicated raw host;
// anything else is treated as a Gitea-compatible host.
//
// Inputs are concatenated verbatim; callers own any validation. This
// mirrors the behavior of earlier releases and keeps produced URLs
// byte-compatible with them.
func Prefix(domain, owner, name, branch string) string {
	if strings.Contains(domain, "github.com") {
		return "https://raw.githubusercontent.com/" + owner + "/" + name + "/" + branch + "/"
	}

	return "https://" + domain + "/" + owner + "/" + name + "/raw/branch/" + branch + "/"
}
