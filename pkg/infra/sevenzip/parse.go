package sevenzip

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/iconex/pkg/domain/model"
)

// Separator between the archive header block and the entry blocks of `7z l -slt`
const listingSeparator = "----------"

type rawEntry struct {
	path   string
	size   string
	folder bool
}

// parseListing parses the technical listing (`7z l -slt`) and returns ICON
// entries sorted by size, largest first. Entries of equal size keep listing order.
func parseListing(source string, r io.Reader) ([]model.IconEntry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		entries  []rawEntry
		current  *rawEntry
		inBody   bool
		sawBlock bool
	)

	flush := func() {
		if current != nil && current.path != "" {
			entries = append(entries, *current)
		}
		current = nil
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if !inBody {
			if strings.TrimSpace(line) == listingSeparator {
				inBody = true
				sawBlock = true
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		key, value, ok := strings.Cut(line, " = ")
		if !ok {
			// "Path =" with empty value has no trailing space
			key, value, ok = strings.Cut(line, " =")
			if !ok {
				continue
			}
		}

		if current == nil {
			current = &rawEntry{}
		}
		switch strings.TrimSpace(key) {
		case "Path":
			if current.path != "" {
				flush()
				current = &rawEntry{}
			}
			current.path = value
		case "Size":
			current.size = value
		case "Folder":
			current.folder = value == "+"
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, goerr.Wrap(model.ErrExtractionFailed, "failed to read listing",
			goerr.V("file", source),
			goerr.V("error", err.Error()),
		)
	}
	if !sawBlock {
		return nil, goerr.Wrap(model.ErrExtractionFailed, "unexpected listing format",
			goerr.V("file", source),
		)
	}

	var icons []model.IconEntry
	for _, e := range entries {
		if e.folder || !model.IsIcon(e.path) {
			continue
		}

		var size int64
		if e.size != "" {
			n, err := strconv.ParseInt(e.size, 10, 64)
			if err != nil {
				return nil, goerr.Wrap(model.ErrExtractionFailed, "invalid entry size in listing",
					goerr.V("file", source),
					goerr.V("entry", e.path),
					goerr.V("size", e.size),
				)
			}
			size = n
		}

		icons = append(icons, model.IconEntry{
			Source: source,
			Name:   e.path,
			Index:  len(icons),
			Size:   size,
		})
	}

	sort.SliceStable(icons, func(i, j int) bool {
		return icons[i].Size > icons[j].Size
	})

	return icons, nil
}
