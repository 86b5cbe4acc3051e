package safe

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Run executes handler synchronously and converts a panic into an error
//
// Behavior:
//   - Returns the handler's error as is
//   - Recovers from panics, logs them with the stack and returns an error
//     carrying the recovered value
func Run(ctx context.Context, handler func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			logger := ctxlog.From(ctx)
			logger.Error("panic in handler",
				"recover", r,
				"stack", string(stack))
			err = goerr.New("recovered from panic", goerr.V("recover", fmt.Sprint(r)))
		}
	}()

	return handler(ctx)
}
