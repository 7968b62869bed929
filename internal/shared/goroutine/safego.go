// Package goroutine provides utilities for launching goroutines with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"nexus/internal/shared/logger"
)

// SafeGo launches fn on a new goroutine. A panic is caught and logged with its
// stack trace instead of crashing the process. Used for best-effort follow-up
// work such as parent status recalculation and notification emails.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
