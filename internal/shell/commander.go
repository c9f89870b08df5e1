package shell

import (
	"os/exec"
)

// Commander is the seam between glance and the external tools it shells
// out to, so subprocess callers can be tested with fakes.
type Commander interface {
	Run(name string, args ...string) ([]byte, error)
}

type ExecCommander struct{}

func (e *ExecCommander) Run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.CombinedOutput()
}
