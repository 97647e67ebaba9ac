package errors

import "fmt"

var (
	ErrEmptyMessage      = fmt.Errorf("message text is empty")
	ErrRecipientRequired = fmt.Errorf("recipient id is required")
	ErrAboutTooLong      = fmt.Errorf("about text exceeds the maximum length")
	ErrNotAnImage        = fmt.Errorf("file is not an image")
	ErrUploadTooLarge    = fmt.Errorf("upload exceeds the size limit")
	ErrMalformedEvent    = fmt.Errorf("malformed realtime event")
	ErrActionFailed      = fmt.Errorf("action rejected by the server")
	ErrNoIdentity        = fmt.Errorf("no authenticated identity")
	ErrNoActiveChat      = fmt.Errorf("no conversation is open")
	ErrSessionExpired    = fmt.Errorf("stored session token expired")
	ErrNotConfirmed      = fmt.Errorf("destructive action not confirmed")
)

// SendFailure is returned when a send request was rejected or timed out.
// It carries the undelivered draft so the caller can restore the compose field
// instead of silently discarding user input.
type SendFailure struct {
	Draft string
	Err   error
}

func (f *SendFailure) Error() string {
	return fmt.Sprintf("send failed: %v", f.Err)
}

func (f *SendFailure) Unwrap() error {
	return f.Err
}
