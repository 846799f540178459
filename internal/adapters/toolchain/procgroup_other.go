//go:build !unix

package toolchain

import "os/exec"

// killProcessGroupOnCancel keeps the exec.CommandContext default of killing the tool only.
func killProcessGroupOnCancel(_ *exec.Cmd) {}
