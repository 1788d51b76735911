//go:build !windows
// +build !windows

package assets

import (
	_ "embed"
)

var (
	//go:embed yinyang.png
	TrayIcon []byte

	TrayIconFilename string = "yinyang.png"
)
