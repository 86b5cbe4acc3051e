// Package imgsniff detects image formats of icon resources from their leading bytes.
package imgsniff

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
)

// Format is an image format recognized by its magic number
type Format string

const (
	PNG     Format = "png"
	ICO     Format = "ico"
	CUR     Format = "cur"
	BMP     Format = "bmp"
	GIF     Format = "gif"
	JPEG    Format = "jpeg"
	TIFF    Format = "tiff"
	WebP    Format = "webp"
	DIB     Format = "dib"
	Unknown Format = "unknown"
)

// FallbackExt is the extension used for blobs with an unrecognized signature
const FallbackExt = ".bin"

// HeadSize is the number of leading bytes Detect needs to tell all formats apart
const HeadSize = 16

var extensions = map[Format]string{
	PNG:  ".png",
	ICO:  ".ico",
	CUR:  ".cur",
	BMP:  ".bmp",
	GIF:  ".gif",
	JPEG: ".jpg",
	TIFF: ".tif",
	WebP: ".webp",
	// Bare DIBs are written as ICO after WrapDIB
	DIB: ".ico",
}

// Ext returns the file extension for the format including the dot
func (f Format) Ext() string {
	if ext, ok := extensions[f]; ok {
		return ext
	}
	return FallbackExt
}

type signature struct {
	offset int
	magic  []byte
	format Format
}

var signatures = []signature{
	{0, []byte("\x89PNG\r\n\x1a\n"), PNG},
	{0, []byte{0x00, 0x00, 0x01, 0x00}, ICO},
	{0, []byte{0x00, 0x00, 0x02, 0x00}, CUR},
	{0, []byte("GIF87a"), GIF},
	{0, []byte("GIF89a"), GIF},
	{0, []byte{0xFF, 0xD8, 0xFF}, JPEG},
	{0, []byte("II*\x00"), TIFF},
	{0, []byte("MM\x00*"), TIFF},
	{0, []byte("BM"), BMP},
	// BITMAPINFOHEADER.biSize
	{0, []byte{0x28, 0x00, 0x00, 0x00}, DIB},
}

// Detect returns the format of an image from its leading bytes
func Detect(head []byte) Format {
	if len(head) >= 12 && bytes.Equal(head[0:4], []byte("RIFF")) && bytes.Equal(head[8:12], []byte("WEBP")) {
		return WebP
	}

	for _, sig := range signatures {
		end := sig.offset + len(sig.magic)
		if len(head) >= end && bytes.Equal(head[sig.offset:end], sig.magic) {
			return sig.format
		}
	}

	return Unknown
}

// DetectFile reads the head of the file at path and detects its format
func DetectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, goerr.Wrap(err, "failed to open file", goerr.V("path", path))
	}
	defer f.Close()

	head := make([]byte, HeadSize)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return Unknown, goerr.Wrap(err, "failed to read file head", goerr.V("path", path))
	}

	return Detect(head[:n]), nil
}

const (
	icoDirSize   = 6
	icoEntrySize = 16
	dibHeaderLen = 40
)

// WrapDIB prepends a single-image ICONDIR to a bare DIB icon resource so the
// result is a valid .ico file. The DIB height covers both XOR and AND masks,
// so the image height is half of it.
func WrapDIB(dib []byte) ([]byte, error) {
	if len(dib) < dibHeaderLen || Detect(dib) != DIB {
		return nil, goerr.New("not a DIB icon resource", goerr.V("size", len(dib)))
	}

	width := int32(binary.LittleEndian.Uint32(dib[4:8]))
	height := int32(binary.LittleEndian.Uint32(dib[8:12])) / 2
	planes := binary.LittleEndian.Uint16(dib[12:14])
	bitCount := binary.LittleEndian.Uint16(dib[14:16])
	if width <= 0 || height <= 0 || width > 256 || height > 256 {
		return nil, goerr.New("unsupported DIB dimensions",
			goerr.V("width", width),
			goerr.V("height", height),
		)
	}

	buf := bytes.NewBuffer(make([]byte, 0, icoDirSize+icoEntrySize+len(dib)))

	// ICONDIR
	_ = binary.Write(buf, binary.LittleEndian, uint16(0)) // reserved
	_ = binary.Write(buf, binary.LittleEndian, uint16(1)) // type: icon
	_ = binary.Write(buf, binary.LittleEndian, uint16(1)) // count

	// ICONDIRENTRY; 0 means 256
	buf.WriteByte(byte(width % 256))
	buf.WriteByte(byte(height % 256))
	buf.WriteByte(0) // colour count
	buf.WriteByte(0) // reserved
	_ = binary.Write(buf, binary.LittleEndian, planes)
	_ = binary.Write(buf, binary.LittleEndian, bitCount)
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(dib)))
	_ = binary.Write(buf, binary.LittleEndian, uint32(icoDirSize+icoEntrySize))

	buf.Write(dib)
	return buf.Bytes(), nil
}
