package gitexec

import (
	"errors"
	"fmt"
	"os/exec"
)

// ForEachRefOptions represents options for git for-each-ref command.
type ForEachRefOptions struct {
	CmdDir string

	Count    int    // Stop after this many refs
	Sort     string // Sort key, prefix with "-" for descending order
	Format   string // Interpolated output format for each ref
	PointsAt string // Only list refs pointing at the given object

	Pattern []string // Limit to refs matching the given patterns
}

// ForEachRefCmd creates an exec.Cmd to execute git for-each-ref with the
// given options.
func ForEachRefCmd(opts *ForEachRefOptions) *exec.Cmd {
	args := []string{"for-each-ref"}

	if opts.PointsAt != "" {
		args = append(args, "--points-at="+opts.PointsAt)
	}

	if opts.Count > 0 {
		args = append(args, fmt.Sprintf("--count=%d", opts.Count))
	}

	if opts.Sort != "" {
		args = append(args, "--sort="+opts.Sort)
	}

	if opts.Format != "" {
		args = append(args, "--format="+opts.Format)
	}

	args = append(args, opts.Pattern...)

	cmd := exec.Command("git", args...)
	cmd.Dir = opts.CmdDir

	return cmd
}

// ForEachRef executes git for-each-ref with the given options.
func ForEachRef(opts *ForEachRefOptions) ([]byte, error) {
	if opts.CmdDir == "" {
		return nil, errors.New("missing command working directory")
	}

	cmd := ForEachRefCmd(opts)

	return run(cmd)
}
