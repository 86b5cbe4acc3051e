package interfaces

import "context"

// ErrorReporter forwards non-fatal failures to an external error tracker
type ErrorReporter interface {
	Report(ctx context.Context, err error)
	Flush()
}

// Progress receives one tick per processed candidate
type Progress interface {
	Start(total int)
	Step(label string)
	Finish()
}
