package heap

import "errors"

var (
	// ErrEmpty is returned by Peek and Pop on a heap with no elements.
	ErrEmpty = errors.New("heap: empty")
	// ErrIndexOutOfRange is returned by ChangeKey for an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("heap: index out of range")
)
