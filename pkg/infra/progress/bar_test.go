package progress_test

import (
	"bytes"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/iconex/pkg/infra/progress"
)

func TestBar(t *testing.T) {
	var buf bytes.Buffer
	bar := progress.New(&buf)

	// Step before Start is ignored
	bar.Step("early")

	bar.Start(2)
	bar.Step("a.exe")
	bar.Step("b.exe")
	bar.Finish()

	gt.String(t, buf.String()).Contains("b.exe")
}
