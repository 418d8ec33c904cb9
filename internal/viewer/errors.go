package viewer

import "errors"

var (
	ErrNoActiveSession   = errors.New("no active story session")
	ErrSessionEnding     = errors.New("story session is ending")
	ErrStoryOutOfRange   = errors.New("story index out of range")
	ErrUnknownRestaurant = errors.New("restaurant has no stories")
	ErrViewerClosed      = errors.New("viewer is shut down")
)
