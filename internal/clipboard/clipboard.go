// Package clipboard copies generated passwords to the system clipboard and
// reports the outcome as a user-facing notification.
package clipboard

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
)

// ToastDuration is how long a copy notification stays visible.
const ToastDuration = 2 * time.Second

const (
	copiedMessage = "Copied to clipboard!"
	failedMessage = "Could not copy to clipboard"
)

var (
	ErrUnavailable   = errors.New("clipboard is not available on this system")
	ErrNothingToCopy = errors.New("nothing to copy")
)

// Writer is the write side of a clipboard.
type Writer interface {
	WriteAll(text string) error
}

type systemWriter struct{}

func (systemWriter) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// System returns the writer backed by the platform clipboard
// (pbcopy, xclip/xsel/wl-copy, or the Windows API).
func System() Writer {
	return systemWriter{}
}

// Notification is the transient message shown after a copy attempt.
type Notification struct {
	Message string
	Err     error
}

// OK reports whether the copy succeeded.
func (n Notification) OK() bool {
	return n.Err == nil
}

func (n Notification) String() string {
	if n.Err != nil {
		return fmt.Sprintf("%s: %v", n.Message, n.Err)
	}
	return n.Message
}

// Copy writes password to w. It never panics; failures come back as a
// failure notification so the caller can keep running.
func Copy(w Writer, password string) (n Notification) {
	if password == "" {
		return Notification{Message: failedMessage, Err: ErrNothingToCopy}
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("clipboard write panicked", "panic", r)
			n = Notification{Message: failedMessage, Err: ErrUnavailable}
		}
	}()

	if err := w.WriteAll(password); err != nil {
		slog.Warn("clipboard write failed", "error", err)
		return Notification{Message: failedMessage, Err: fmt.Errorf("writing clipboard: %w", err)}
	}

	slog.Debug("password copied to clipboard", "length", len(password))
	return Notification{Message: copiedMessage}
}
