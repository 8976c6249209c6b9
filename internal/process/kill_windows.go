//go:build windows

// Package process terminates browser process trees left behind by a launcher.
package process

import (
	"os/exec"
	"strconv"
)

// KillProcessGroup force-kills pid and its child processes with taskkill
// (/F force, /T tree). Errors are ignored: the tree may already be gone.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
