package gitexec

import (
	"errors"
	"os/exec"
)

type RevParseOptions struct {
	CmdDir string

	GitDir       bool // Path to the repository metadata directory
	Short        bool // Abbreviate object names
	ShowTopLevel bool

	Rev string // Revision to resolve, e.g. "HEAD"
}

func RevParseCmd(opts *RevParseOptions) *exec.Cmd {
	args := []string{"rev-parse"}

	if opts.GitDir {
		args = append(args, "--git-dir")
	}

	if opts.Short {
		args = append(args, "--short")
	}

	if opts.ShowTopLevel {
		args = append(args, "--show-toplevel")
	}

	if opts.Rev != "" {
		args = append(args, opts.Rev)
	}

	cmd := exec.Command("git", args...)
	cmd.Dir = opts.CmdDir

	return cmd
}

func RevParse(opts *RevParseOptions) ([]byte, error) {
	if opts.CmdDir == "" {
		return nil, errors.New("missing command working directory")
	}

	cmd := RevParseCmd(opts)

	return run(cmd)
}
