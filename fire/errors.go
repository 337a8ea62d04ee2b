package fire

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrNotFound is returned when a document doesn't exist.
	ErrNotFound = errors.New("fire: document not found")

	// ErrExists is returned when creating a document that already exists.
	ErrExists = errors.New("fire: document already exists")

	// ErrInvalidPath is returned when a reference path is empty, malformed,
	// or addresses the wrong kind of reference (collection vs. document).
	ErrInvalidPath = errors.New("fire: invalid reference path")

	// ErrNilData is returned when nil data is passed to a write operation.
	ErrNilData = errors.New("fire: nil document data")

	// ErrNoProject is returned by Dial when no project ID is configured.
	ErrNoProject = errors.New("fire: project ID required")
)

// mapStatus converts backend gRPC status errors to package sentinels.
// Anything unrecognized is wrapped with the operation name.
func mapStatus(op string, err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrExists
	}
	return fmt.Errorf("fire: %s: %w", op, err)
}
