// Released under an MIT license. See LICENSE.

//go:build !unix

package ui

func width() int {
	return columns
}
