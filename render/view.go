// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	shellquote "github.com/kballard/go-shellquote"
)

// ViewCommand returns the command that shows path using the viewer
// command line cmdline, for example "feh -F" or "xdg-open". The path
// is appended as the final argument.
func ViewCommand(cmdline, path string) (*exec.Cmd, error) {
	args, err := shellquote.Split(cmdline)
	if err != nil {
		return nil, fmt.Errorf("parsing viewer command %q: %w", cmdline, err)
	}
	if len(args) == 0 {
		return nil, errors.New("empty viewer command")
	}
	args = append(args, path)
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// View shows path with the viewer cmdline and waits for it to exit.
func View(cmdline, path string) error {
	cmd, err := ViewCommand(cmdline, path)
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", shellquote.Join(cmd.Args...), err)
	}
	return nil
}
