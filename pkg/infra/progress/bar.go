package progress

import (
	"io"

	"github.com/m-mizutani/iconex/pkg/domain/interfaces"
	"github.com/schollz/progressbar/v3"
)

// Bar renders candidate progress on a terminal
type Bar struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

var _ interfaces.Progress = (*Bar)(nil)

// New creates a Bar writing to w
func New(w io.Writer) *Bar {
	return &Bar{w: w}
}

// Start resets the bar for total candidates
func (b *Bar) Start(total int) {
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.w),
		progressbar.OptionSetDescription("extracting"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)
}

// Step advances the bar by one and shows label
func (b *Bar) Step(label string) {
	if b.bar == nil {
		return
	}
	b.bar.Describe(label)
	_ = b.bar.Add(1)
}

// Finish completes the bar
func (b *Bar) Finish() {
	if b.bar == nil {
		return
	}
	_ = b.bar.Finish()
}
