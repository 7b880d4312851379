package utils

import (
	"strings"
	"time"
)

// WithRetry runs fn up to attempts times with exponential backoff, retrying
// only transient database failures. Validation and not-found errors pass
// through on the first attempt.
func WithRetry(attempts int, baseDelay time.Duration, fn func() error) error {
	var err error
	delay := baseDelay

	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil {
			return nil
		}
		if !IsTransientDBError(err) {
			return err
		}
		if i < attempts-1 {
			time.Sleep(delay)
			delay *= 2
		}
	}

	return err
}

func IsTransientDBError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, s := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"timeout",
		"too many connections",
		"deadlock",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
