// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/padbx/kit"
	"github.com/sqweek/dialog"
)

// chooseKit returns dir, or the directory picked in a folder dialog when
// dir is empty.
func chooseKit(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("%w", err)
		}

		dir, err = dialog.Directory().
			Title("Open sampler kit").
			SetStartDir(cwd).
			Browse()
		if err != nil {
			return "", err
		}
		if dir == "" {
			return "", dialog.ErrCancelled
		}
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("cannot get absolute path: %w", err)
	}
	if _, err := os.Stat(filepath.Join(abs, kit.FileName)); err != nil {
		return "", fmt.Errorf("not a kit directory: %w", err)
	}

	return abs, nil
}
