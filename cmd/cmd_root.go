package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/zbiljic/gitprompt/internal/buildinfo"
	"github.com/zbiljic/gitprompt/internal/config"
	"github.com/zbiljic/gitprompt/internal/log"
	"github.com/zbiljic/gitprompt/pkg/gitstatus"
	"github.com/zbiljic/gitprompt/pkg/versioninfo"
)

// AppName - the name of the application.
const AppName = "gitprompt"

var rootCmd = &cobra.Command{
	Use:   AppName,
	Short: "Summarize git working tree state for a shell prompt",
	Long: `Prints one machine-readable line describing the current git working
tree: branch, commits ahead/behind upstream, and counts of staged,
conflicted, changed, untracked, stashed and deleted paths. Outside a
git repository it prints nothing and exits successfully.`,
	Version: versioninfo.Info{
		Version: buildinfo.Version,
		Commit:  buildinfo.GitCommit,
		BuiltBy: buildinfo.BuiltBy,
	}.String(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt)
		cmd.SetContext(ctx)
	},
	Args:          cobra.NoArgs,
	RunE:          runRootE,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootAddFlags(rootCmd)
}

// Execute runs the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if _, err := rootCmd.ExecuteC(); err != nil {
		cobra.CheckErr(err)
	}
}

func runRootE(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	applyLogLevel(cmd, cfg)

	dir := rootFlags.Dir
	if dir == "" {
		dir = getWd()
	}

	out, err := gitStatus(dir)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// git refused the status query, so this is not a repository;
			// the prompt shows nothing and the shell must not see a failure
			log.Debug().
				Int("code", exitErr.ExitCode()).
				Str("dir", dir).
				Msg("status query failed, not a repository")
			return nil
		}
		return err
	}

	result := gitstatus.Parse(string(out), func() string {
		return gitTagOrHash(dir)
	})

	stashed, err := gitStashCount(dir)
	if err != nil {
		return err
	}

	line := result.Format(stashed, cfg.Separator)

	fmt.Fprint(cmd.OutOrStdout(), line)
	if isTerminal {
		// only humans get a trailing newline; prompt scripts read the
		// bare line
		fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}
