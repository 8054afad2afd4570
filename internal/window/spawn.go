package window

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// ProcessHost creates widget windows as child processes: the running
// executable is re-invoked in widget-window mode (see RunWindow), one
// process per window. The handle kills the child on close.
type ProcessHost struct{}

func (ProcessHost) CreateWindow(opts Options) (Handle, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	cmd := exec.Command(exe,
		"-widget-url", opts.URL,
		"-widget-title", opts.Title,
		"-widget-width", strconv.Itoa(opts.Width),
		"-widget-height", strconv.Itoa(opts.Height),
		"-widget-x", strconv.Itoa(opts.X),
		"-widget-y", strconv.Itoa(opts.Y),
		"-widget-transparent="+strconv.FormatBool(opts.Transparent),
		"-widget-on-top="+strconv.FormatBool(opts.AlwaysOnTop),
	)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start widget window process: %w", err)
	}

	// Reap the child whenever it exits, including user-initiated closes.
	go func() { _ = cmd.Wait() }()

	return &processHandle{cmd: cmd}, nil
}

type processHandle struct {
	cmd *exec.Cmd
}

func (h *processHandle) Close() error {
	if h.cmd.Process == nil {
		return nil
	}
	if err := h.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}
