package notify

import (
	"context"
	"io"
	"os/exec"
)

// commandRunner runs an external tool to completion and returns its combined output.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// process is a started external tool whose stdout is streamed.
type process interface {
	Stdout() io.Reader
	Wait() error
	Kill() error
}

// commandStarter starts an external tool without waiting for it.
type commandStarter func(name string, args ...string) (process, error)

type execProcess struct {
	cmd    *exec.Cmd
	stdout io.Reader
}

func execStarter(name string, args ...string) (process, error) {
	cmd := exec.Command(name, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &execProcess{cmd: cmd, stdout: stdout}, nil
}

func (p *execProcess) Stdout() io.Reader { return p.stdout }
func (p *execProcess) Wait() error       { return p.cmd.Wait() }
func (p *execProcess) Kill() error       { return p.cmd.Process.Kill() }
