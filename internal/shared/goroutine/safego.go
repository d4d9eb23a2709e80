// Package goroutine launches goroutines that recover from panics.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"leaguemotd/internal/shared/logger"
)

// SafeGo runs fn in a goroutine. The returned channel receives fn's error,
// or an error describing a recovered panic, and is then closed.
func SafeGo(log logger.Interface, name string, fn func() error) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
				done <- fmt.Errorf("%s panicked: %v", name, r)
			}
		}()
		if err := fn(); err != nil {
			done <- err
		}
	}()
	return done
}
