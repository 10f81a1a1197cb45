// Package store provides the storage abstraction layer for linkr.
//
// The package defines the [Store] interface which abstracts all persistence
// operations: repository records, profiles, the domain token table, and the
// last-used state markers. The default backend is BoltDB, an embedded
// key-value store; building with the `sqlite` tag switches to a SQLite
// backend (pure Go driver).
//
// Tokens never reach disk in the clear: both backends seal token values
// through [secret.Sealer] before writing them.
//
// Use [GetDB] to obtain the singleton store instance:
//
//	st := store.GetDB()
//	repos, err := st.ListRepos()
package store
