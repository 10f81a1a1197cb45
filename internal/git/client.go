// Package git wraps the git executable for the operations linkr needs:
// clone, update, branch inspection, and tracked-file enumeration.
package git

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Client wraps git operations for one repository directory.
type Client struct {
	RepoDir string    // Repository directory
	GitPath string    // Path to git executable
	Stderr  io.Writer // Destination for interactive command output
	Stdout  io.Writer
}

// NewClient creates a new git client.
func NewClient() *Client {
	gitPath, _ := exec.LookPath("git")

	return &Client{
		GitPath: gitPath,
		Stderr:  os.Stderr,
		Stdout:  os.Stdout,
	}
}

// NewClientForRepo creates a client for a specific repository directory.
func NewClientForRepo(repoDir string) *Client {
	c := NewClient()
	c.RepoDir = repoDir

	return c
}

// Command creates a git command rooted at the client's repository directory.
// Note: Do not set Stdout/Stderr if you plan to use CombinedOutput()
func (c *Client) Command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.GitPath, args...)

	if c.RepoDir != "" {
		cmd.Dir = c.RepoDir
	}

	return cmd
}

// Clone clones cloneURL into targetPath.
func (c *Client) Clone(ctx context.Context, cloneURL, targetPath string) error {
	cmd := exec.CommandContext(ctx, c.GitPath, "clone", cloneURL, targetPath)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return &GitError{
			Stderr: string(output),
			err:    err,
		}
	}

	return nil
}

// Fetch fetches from the default remote.
func (c *Client) Fetch(ctx context.Context) error {
	cmd := c.Command(ctx, "fetch", "--prune")

	output, err := cmd.CombinedOutput()
	if err != nil {
		return &GitError{
			Stderr: string(output),
			err:    err,
		}
	}

	return nil
}

// Pull fast-forwards the current branch from its tracking ref.
func (c *Client) Pull(ctx context.Context) error {
	cmd := c.Command(ctx, "pull", "--ff-only")

	output, err := cmd.CombinedOutput()
	if err != nil {
		return &GitError{
			Stderr: string(output),
			err:    err,
		}
	}

	return nil
}

// IsRepository checks if the client's directory is a git repository.
func (c *Client) IsRepository(ctx context.Context) bool {
	cmd := c.Command(ctx, "rev-parse", "--git-dir")

	return cmd.Run() == nil
}

// CurrentBranch returns the current branch name. Detached HEAD reports
// the literal "HEAD".
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	cmd := c.Command(ctx, "rev-parse", "--abbrev-ref", "HEAD")

	output, err := cmd.Output()
	if err != nil {
		return "", &GitError{err: err}
	}

	return strings.TrimSpace(string(output)), nil
}

// HasBranch reports whether name exists as a local or remote-tracking ref.
func (c *Client) HasBranch(ctx context.Context, name string) bool {
	local := c.Command(ctx, "show-ref", "--verify", "--quiet", "refs/heads/"+name)
	if local.Run() == nil {
		return true
	}

	remote := c.Command(ctx, "show-ref", "--verify", "--quiet", "refs/remotes/origin/"+name)

	return remote.Run() == nil
}

// ListRemoteBranches returns remote-tracking branch names with the remote
// prefix stripped, HEAD excluded and duplicates collapsed. Order follows
// the git listing.
func (c *Client) ListRemoteBranches(ctx context.Context) ([]string, error) {
	cmd := c.Command(ctx, "branch", "-r", "--no-color")

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, &GitError{
			Stderr: string(output),
			err:    err,
		}
	}

	return parseRemoteBranches(string(output)), nil
}

// ListTrackedFiles returns the paths tracked in the index, in git's
// listing order. Ignored and untracked files are never reported.
func (c *Client) ListTrackedFiles(ctx context.Context) ([]string, error) {
	cmd := c.Command(ctx, "ls-files")

	output, err := cmd.Output()
	if err != nil {
		return nil, &GitError{err: err}
	}

	var files []string

	for line := range strings.SplitSeq(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		files = append(files, line)
	}

	return files, nil
}

// parseRemoteBranches parses `git branch -r` output.
func parseRemoteBranches(output string) []string {
	var branches []string

	seen := make(map[string]bool)

	for line := range strings.SplitSeq(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Skip symbolic references like origin/HEAD -> origin/main
		if strings.Contains(line, " -> ") {
			continue
		}

		// Strip the remote-name prefix
		if idx := strings.Index(line, "/"); idx != -1 {
			line = line[idx+1:]
		}

		if line == "" || line == "HEAD" || seen[line] {
			continue
		}

		seen[line] = true

		branches = append(branches, line)
	}

	return branches
}

// GitError represents a git command error.
type GitError struct {
	ExitCode int
	Stderr   string
	err      error
}

func (e *GitError) Error() string {
	if e.Stderr == "" {
		return fmt.Errorf("git command failed: %w", e.err).Error()
	}

	return fmt.Sprintf("git command failed: %s", strings.TrimSpace(e.Stderr))
}

func (e *GitError) Unwrap() error {
	return e.err
}
