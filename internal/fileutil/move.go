package fileutil

import (
	"errors"
	"fmt"
	"os"
)

// Swappable so tests can simulate EXDEV and permission failures.
var renameFunc = renameNoReplace

// CrossDeviceError reports a rename that failed because src and dst live on
// different filesystems.
type CrossDeviceError struct {
	Src string
	Dst string
	Err error
}

func (e *CrossDeviceError) Error() string {
	return fmt.Sprintf("cross-device rename %q -> %q: %v", e.Src, e.Dst, e.Err)
}

func (e *CrossDeviceError) Unwrap() error { return e.Err }

// IsCrossDevice reports whether err is a *CrossDeviceError.
func IsCrossDevice(err error) bool {
	var e *CrossDeviceError
	return errors.As(err, &e)
}

// Rename moves src to dst on the same filesystem. Where the platform allows,
// the rename refuses to replace an existing dst and fails with an error
// matching os.ErrExist. EXDEV failures come back as *CrossDeviceError.
func Rename(src, dst string) error {
	if err := renameFunc(src, dst); err != nil {
		if isEXDEV(err) {
			return &CrossDeviceError{Src: src, Dst: dst, Err: err}
		}
		return err
	}
	return nil
}

// MoveFile renames src to dst, falling back to a verified copy followed by
// removal of src when the two paths are on different devices.
func MoveFile(src, dst string) error {
	err := Rename(src, dst)
	if err == nil {
		return nil
	}
	if !IsCrossDevice(err) {
		return err
	}

	if copyErr := CopyFileVerified(src, dst); copyErr != nil {
		return fmt.Errorf("copy across devices: %w", copyErr)
	}
	if rmErr := os.Remove(src); rmErr != nil {
		return fmt.Errorf("copied to %s but could not remove source: %w", dst, rmErr)
	}
	return nil
}
