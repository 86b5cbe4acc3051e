//go:build windows && (amd64 || arm64)

package trash

import "unsafe"

// SHFILEOPSTRUCTW with natural alignment
type shFileOpStruct struct {
	hwnd                  uintptr
	wFunc                 uint32
	pFrom                 *uint16
	pTo                   *uint16
	fFlags                uint16
	fAnyOperationsAborted int32
	hNameMappings         uintptr
	lpszProgressTitle     *uint16
}

func shFileOperation(fn uint32, from *uint16, flags uint16) (uintptr, bool) {
	op := shFileOpStruct{
		wFunc:  fn,
		pFrom:  from,
		fFlags: flags,
	}
	r, _, _ := procSHFileOperationW.Call(uintptr(unsafe.Pointer(&op)))
	return r, op.fAnyOperationsAborted != 0
}
