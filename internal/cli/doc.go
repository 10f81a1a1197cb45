// Package cli contains the bubbletea models backing linkr's interactive
// mode: record and profile selectors, the branch picker, and yes-no
// confirmation prompts.
package cli
