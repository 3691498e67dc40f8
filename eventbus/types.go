package eventbus

import "errors"

// ErrNilListener indicates Subscribe/Once was called with a nil listener.
var ErrNilListener = errors.New("eventbus: listener must not be nil")

// Listener receives a payload of type P when an event fires.
type Listener[P any] func(payload P)

// Unsubscribe removes the listener it was returned from. Calling it more
// than once is a no-op.
type Unsubscribe func()
