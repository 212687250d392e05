// Package textutil sanitizes user-supplied names before they become path
// segments.
package textutil
