//go:build windows && (386 || arm)

package trash

import (
	"encoding/binary"
	"runtime"
	"unsafe"
)

// SHFILEOPSTRUCTW is packed to 1 byte on 32-bit Windows, so fields after
// fFlags are unaligned and cannot be expressed as a Go struct.
const (
	offWFunc                 = 4
	offPFrom                 = 8
	offFFlags                = 16
	offFAnyOperationsAborted = 18
	shFileOpStructSize       = 30
)

func shFileOperation(fn uint32, from *uint16, flags uint16) (uintptr, bool) {
	var op [shFileOpStructSize]byte
	binary.LittleEndian.PutUint32(op[offWFunc:], fn)
	binary.LittleEndian.PutUint32(op[offPFrom:], uint32(uintptr(unsafe.Pointer(from))))
	binary.LittleEndian.PutUint16(op[offFFlags:], flags)

	r, _, _ := procSHFileOperationW.Call(uintptr(unsafe.Pointer(&op[0])))
	runtime.KeepAlive(from)

	return r, binary.LittleEndian.Uint32(op[offFAnyOperationsAborted:]) != 0
}
