//go:build !windows
// +build !windows

package theme

import (
	"errors"
	"runtime"
)

func openPersonalizeKey(_ bool) (Key, error) {
	return nil, errors.New("appearance flags are not supported on " + runtime.GOOS)
}
