package watch

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/woonysoft/woonysoft-fire/fire"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindAdded, "added"},
		{KindModified, "modified"},
		{KindRemoved, "removed"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestConvertKind(t *testing.T) {
	tests := []struct {
		in       firestore.DocumentChangeKind
		expected Kind
	}{
		{firestore.DocumentAdded, KindAdded},
		{firestore.DocumentModified, KindModified},
		{firestore.DocumentRemoved, KindRemoved},
	}

	for _, tt := range tests {
		if got := convertKind(tt.in); got != tt.expected {
			t.Errorf("convertKind(%v) = %v, want %v", tt.in, got, tt.expected)
		}
	}
}

func TestNewListener_NilLogger(t *testing.T) {
	l := NewListener(nil)
	if l == nil {
		t.Fatal("expected non-nil Listener")
	}
	if l.logger == nil {
		t.Error("expected default logger for nil input")
	}
}

func TestCanceled(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"context canceled", context.Canceled, true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"grpc canceled", status.Error(codes.Canceled, "canceled"), true},
		{"grpc deadline", status.Error(codes.DeadlineExceeded, "deadline"), true},
		{"grpc unavailable", status.Error(codes.Unavailable, "down"), false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canceled(tt.err); got != tt.expected {
				t.Errorf("canceled(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestListen_InvalidQuery(t *testing.T) {
	c := fire.New(nil, fire.DefaultConfig())
	l := NewListener(nil)

	// A document path is not a valid query root; the error surfaces before
	// any listener is started.
	err := l.Listen(context.Background(), c.Query("users/alice"), func(context.Context, Change) error {
		t.Error("callback must not run for an invalid query")
		return nil
	})
	if !errors.Is(err, fire.ErrInvalidPath) {
		t.Errorf("expected ErrInvalidPath, got %v", err)
	}
}
