//go:build tools
// +build tools

// Build tools. Package giocalc for Android, iOS or the browser with
//
//	go run gioui.org/cmd/gogio -target android ./giocalc
package tools

import (
	_ "gioui.org/cmd/gogio"
)
