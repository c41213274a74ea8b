package rawpack

import (
	"errors"
	"fmt"
)

// ErrDirectoryCreation is returned by Batch.Run when the originals directory
// cannot be created. No candidate is processed in that case.
var ErrDirectoryCreation = errors.New("cannot create originals directory")

// ErrorKind tags the step a candidate failed at.
type ErrorKind int

const (
	OpenError ErrorKind = iota + 1
	CreateError
	CompressionError
	FinalizeError
	MoveError
)

func (k ErrorKind) String() string {
	switch k {
	case OpenError:
		return "open"
	case CreateError:
		return "create"
	case CompressionError:
		return "compress"
	case FinalizeError:
		return "finalize"
	case MoveError:
		return "move"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// MarshalText lets reports carry the kind by name.
func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (k *ErrorKind) UnmarshalText(b []byte) error {
	for c := OpenError; c <= MoveError; c++ {
		if c.String() == string(b) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown error kind %q", b)
}

// FileError is a per-candidate failure.
type FileError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
