package usecase_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf16"

	"github.com/m-mizutani/gt"
)

// writeShortcut writes a minimal shell link with an optional local base path
// and an optional relative path
func writeShortcut(t *testing.T, path, localBase, relative string) {
	t.Helper()

	var flags uint32 = 0x80 // IsUnicode
	if localBase != "" {
		flags |= 0x02 // HasLinkInfo
	}
	if relative != "" {
		flags |= 0x08 // HasRelativePath
	}

	var buf bytes.Buffer
	le := func(v any) { gt.NoError(t, binary.Write(&buf, binary.LittleEndian, v)) }

	le(uint32(0x4C))
	buf.Write([]byte{0x01, 0x14, 0x02, 0x00, 0, 0, 0, 0, 0xC0, 0, 0, 0, 0, 0, 0, 0x46})
	le(flags)
	le(uint32(0x20)) // FILE_ATTRIBUTE_ARCHIVE
	buf.Write(make([]byte, 24))
	le(uint32(0)) // file size
	le(int32(0))  // icon index
	le(uint32(1)) // SW_SHOWNORMAL
	buf.Write(make([]byte, 2+2+4+4))

	if localBase != "" {
		volumeID := []byte{17, 0, 0, 0, 3, 0, 0, 0, 0, 0, 0, 0, 0x10, 0, 0, 0, 0}
		base := append([]byte(localBase), 0)
		baseOffset := uint32(0x1C + len(volumeID))
		suffixOffset := baseOffset + uint32(len(base))

		le(suffixOffset + 1)
		le(uint32(0x1C))
		le(uint32(1)) // VolumeIDAndLocalBasePath
		le(uint32(0x1C))
		le(baseOffset)
		le(uint32(0))
		le(suffixOffset)
		buf.Write(volumeID)
		buf.Write(base)
		buf.WriteByte(0)
	}

	if relative != "" {
		chars := utf16.Encode([]rune(relative))
		le(uint16(len(chars)))
		le(chars)
	}

	le(uint32(0)) // terminal block

	gt.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func copyFixture(t *testing.T, name, dst string) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	gt.NoError(t, err)
	gt.NoError(t, os.WriteFile(dst, data, 0644))
}
