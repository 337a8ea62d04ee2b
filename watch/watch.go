// Package watch provides a snapshot-listener helper over fire queries.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/woonysoft/woonysoft-fire/fire"
)

// Kind classifies a document change within a snapshot.
type Kind int

const (
	KindAdded Kind = iota
	KindModified
	KindRemoved
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAdded:
		return "added"
	case KindModified:
		return "modified"
	case KindRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Change is a single document change delivered to a listener callback.
type Change struct {
	Kind Kind
	Doc  *fire.Document
}

// Listener streams query snapshot changes to a callback.
type Listener struct {
	logger *slog.Logger
}

// NewListener creates a listener. A nil logger falls back to slog.Default.
func NewListener(logger *slog.Logger) *Listener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Listener{logger: logger}
}

// Listen drains snapshots for the query, invoking fn once per document
// change until the context is canceled. Cancellation is a clean stop and
// returns nil; a callback error stops the listener and is returned.
func (l *Listener) Listen(ctx context.Context, q fire.Query, fn func(context.Context, Change) error) error {
	it, err := q.Snapshots(ctx)
	if err != nil {
		return err
	}
	defer it.Stop()

	for {
		snap, err := it.Next()
		if err != nil {
			if canceled(err) {
				return nil
			}
			return fmt.Errorf("watch: next snapshot: %w", err)
		}

		for _, dc := range snap.Changes {
			change := Change{
				Kind: convertKind(dc.Kind),
				Doc:  fire.FromSnapshot(dc.Doc),
			}
			if err := fn(ctx, change); err != nil {
				l.logger.Error("change handler failed",
					"path", change.Doc.Path,
					"kind", change.Kind.String(),
					"error", err,
				)
				return err
			}
			l.logger.Debug("change delivered",
				"path", change.Doc.Path,
				"kind", change.Kind.String(),
			)
		}
	}
}

// convertKind maps the SDK change kind to a watch Kind.
func convertKind(k firestore.DocumentChangeKind) Kind {
	switch k {
	case firestore.DocumentAdded:
		return KindAdded
	case firestore.DocumentModified:
		return KindModified
	case firestore.DocumentRemoved:
		return KindRemoved
	default:
		return KindAdded
	}
}

// canceled reports whether err is a context cancellation, either direct or
// surfaced as a gRPC status.
func canceled(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	switch status.Code(err) {
	case codes.Canceled, codes.DeadlineExceeded:
		return true
	}
	return false
}
