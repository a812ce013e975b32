package main

import (
	"math"
	"path/filepath"
	"strings"
)

const EPS = 1e-14

// EnsureExt returns name with ext appended unless it already ends
// with it
func EnsureExt(name, ext string) string {
	if strings.HasSuffix(name, ext) {
		return name
	}
	return name + ext
}

// TrimExt removes the extension, if any, from filename
func TrimExt(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

func Equal(a, b float64) bool {
	return math.Abs(a-b) <= EPS
}
