package interfaces

import (
	"context"

	"github.com/m-mizutani/iconex/pkg/domain/model"
)

// Archiver defines operations of the external archive tool
type Archiver interface {
	// ListIcons returns entries under the ICON folder of the file, largest first
	ListIcons(ctx context.Context, path string) ([]model.IconEntry, error)

	// Extract decompresses a single entry into destDir and returns the path of the extracted file
	Extract(ctx context.Context, path string, entry model.IconEntry, destDir string) (string, error)
}

// Trasher moves files to the system trash
type Trasher interface {
	// Trash moves the file at path to the trash and returns its new location
	Trash(path string) (string, error)
}
