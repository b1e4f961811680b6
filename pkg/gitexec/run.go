package gitexec

import "os/exec"

// run executes the command and returns its standard output. Stderr is
// not captured so git diagnostics never mix into output that callers
// parse.
func run(cmd *exec.Cmd) ([]byte, error) {
	withSysProcAttr(cmd)

	out, err := cmd.Output()
	if err != nil {
		return out, err
	}

	return out, nil
}
