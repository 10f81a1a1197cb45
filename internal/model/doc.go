// Package model defines the persisted data records used across linkr:
// repository records, profiles, and the last-used state markers.
package model
