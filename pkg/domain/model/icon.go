package model

import (
	"path"
	"strings"
)

// IconFolder is the archive folder name under which icon resources appear
const IconFolder = "ICON"

// IconEntry represents one archive entry found under the ICON folder
type IconEntry struct {
	Source string // Path of the executable the entry belongs to
	Name   string // In-archive path as reported by the archive tool, e.g. ".rsrc/1033/ICON/2"
	Index  int    // Position in listing order
	Size   int64  // Uncompressed size in bytes
}

// BaseName returns the last element of Name. Both '/' and '\' are treated as separators.
func (e *IconEntry) BaseName() string {
	return path.Base(toSlash(e.Name))
}

// Ext returns the extension of the entry name including the dot, or "" if it has none
func (e *IconEntry) Ext() string {
	return path.Ext(e.BaseName())
}

// IsIcon reports whether name has a path segment equal to ICON
func IsIcon(name string) bool {
	segments := strings.Split(toSlash(name), "/")
	if len(segments) < 2 {
		return false
	}
	// The last segment is the resource itself
	for _, s := range segments[:len(segments)-1] {
		if s == IconFolder {
			return true
		}
	}
	return false
}

func toSlash(name string) string {
	return strings.ReplaceAll(name, `\`, "/")
}

// ExtractedIcon represents an icon blob in a temporary directory with its resolved extension
type ExtractedIcon struct {
	Entry    IconEntry
	TempPath string
	Ext      string
}
