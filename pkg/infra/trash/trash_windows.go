package trash

import (
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sys/windows"
)

const (
	foDelete           = 0x0003
	fofSilent          = 0x0004
	fofNoConfirmation  = 0x0010
	fofAllowUndo       = 0x0040
	fofNoErrorUI       = 0x0400
	recycleBinLocation = "Recycle Bin"
)

var (
	modShell32           = windows.NewLazySystemDLL("shell32.dll")
	procSHFileOperationW = modShell32.NewProc("SHFileOperationW")
)

func (t *Trash) trash(abs string) (string, error) {
	from, err := windows.UTF16FromString(abs)
	if err != nil {
		return "", goerr.Wrap(err, "failed to encode path", goerr.V("path", abs))
	}
	// pFrom is a double null terminated list
	from = append(from, 0)

	r, aborted := shFileOperation(foDelete, &from[0], fofAllowUndo|fofNoConfirmation|fofSilent|fofNoErrorUI)
	if r != 0 {
		return "", goerr.New("SHFileOperationW failed", goerr.V("path", abs), goerr.V("code", r))
	}
	if aborted {
		return "", goerr.New("moving to Recycle Bin was aborted", goerr.V("path", abs))
	}

	return recycleBinLocation, nil
}
