package term

import "errors"

// ErrQuit reports that the user asked to leave the viewer. Callers treat
// it as a clean shutdown rather than a failure.
var ErrQuit = errors.New("quit requested")
