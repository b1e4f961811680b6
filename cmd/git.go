package cmd

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/spf13/cobra"

	"github.com/zbiljic/gitprompt/internal/log"
	"github.com/zbiljic/gitprompt/pkg/gitexec"
	"github.com/zbiljic/gitprompt/pkg/gitstatus"
)

// gitStatus runs the porcelain status query with the branch summary
// header included.
func gitStatus(path string) ([]byte, error) {
	return gitexec.Status(&gitexec.StatusOptions{
		CmdDir:    path,
		Porcelain: true,
		Branch:    true,
	})
}

// gitStashCount counts stash entries by counting lines of the stash
// reflog inside the repository metadata directory. A missing or
// unreadable log means no stashes.
func gitStashCount(path string) (int, error) {
	out, err := gitexec.RevParse(&gitexec.RevParseOptions{
		CmdDir: path,
		GitDir: true,
	})
	if err != nil && !isExitError(err) {
		return 0, err
	}

	gitDir := strings.TrimSpace(string(out))
	if gitDir == "" {
		// metadata directory unresolvable; never fall back to probing
		// worktree paths
		return 0, nil
	}
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(path, gitDir)
	}

	stashLog := filepath.Join(gitDir, "logs", "refs", "stash")
	data, err := os.ReadFile(stashLog)
	if err != nil {
		log.Debug().Str("path", stashLog).Msg("no stash log")
		return 0, nil
	}

	return len(slice.Compact(strings.Split(string(data), "\n"))), nil
}

// gitTagOrHash labels a detached HEAD: it lists at most two
// version-sorted tags pointing at HEAD, queries the abbreviated commit
// hash only when no tag is found, and lets gitstatus.DetachedLabel
// derive the label from the two.
//
// Spawn failures abort the program: if git ran once already, not being
// able to run it again is a broken environment, not an input edge case.
func gitTagOrHash(path string) string {
	out, err := gitexec.ForEachRef(&gitexec.ForEachRefOptions{
		CmdDir:   path,
		PointsAt: "HEAD",
		Count:    2,
		Sort:     "-version:refname",
		Format:   "%(refname:short)",
		Pattern:  []string{"refs/tags"},
	})
	if err != nil && !isExitError(err) {
		cobra.CheckErr(err)
	}

	tags := strings.Fields(string(out))

	hash := ""
	if len(tags) == 0 {
		out, err = gitexec.RevParse(&gitexec.RevParseOptions{
			CmdDir: path,
			Short:  true,
			Rev:    "HEAD",
		})
		if err != nil && !isExitError(err) {
			cobra.CheckErr(err)
		}
		hash = string(out)
	}

	return gitstatus.DetachedLabel(tags, hash)
}

// isExitError reports whether err is git exiting non-zero, as opposed
// to git failing to run at all.
func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
