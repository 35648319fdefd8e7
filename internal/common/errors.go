package common

import (
	"context"
	"errors"
	"net"
)

// IsTimeout reports whether err was caused by an expired deadline, either on the context or on
// the underlying connection.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
