//go:build !linux

package fileutil

import "os"

func renameNoReplace(src, dst string) error {
	return os.Rename(src, dst)
}
