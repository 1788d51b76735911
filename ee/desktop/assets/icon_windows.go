//go:build windows
// +build windows

package assets

import (
	_ "embed"
)

var (
	//go:embed yinyang.ico
	TrayIcon []byte

	TrayIconFilename string = "yinyang.ico"
)
