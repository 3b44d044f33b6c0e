package interfaces

import "time"

// IClock is injected wherever the current time matters, so delay and
// timestamp logic can be tested deterministically.
type IClock interface {
	Now() time.Time
}
