// Released under an MIT license. See LICENSE.

//go:build unix

package ui

import (
	"os"

	"golang.org/x/sys/unix"
)

func width() int {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return columns
	}

	return int(ws.Col)
}
