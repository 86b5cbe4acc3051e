package model

// Candidate represents a file that is expected to be a Windows executable
type Candidate struct {
	Path string // Absolute, cleaned path
	Size int64  // Size in bytes
}
