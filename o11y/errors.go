package o11y

import "errors"

// ErrNoObserver is returned when a context has not been through Initialise or AddToContext.
var ErrNoObserver = errors.New("o11y Observer not found in context - please initialise o11y first")
