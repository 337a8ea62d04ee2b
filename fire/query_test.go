package fire_test

import (
	"context"
	"errors"
	"testing"

	"github.com/woonysoft/woonysoft-fire/fire"
)

func TestQuery_InvalidCollectionPath(t *testing.T) {
	c := fire.New(nil, fire.DefaultConfig())
	ctx := context.Background()

	tests := []string{
		"users/alice", // document path
		"",
		"///",
	}

	for _, path := range tests {
		q := c.Query(path)

		if _, err := q.Documents(ctx); !errors.Is(err, fire.ErrInvalidPath) {
			t.Errorf("Documents(%q): expected ErrInvalidPath, got %v", path, err)
		}
		if _, err := q.First(ctx); !errors.Is(err, fire.ErrInvalidPath) {
			t.Errorf("First(%q): expected ErrInvalidPath, got %v", path, err)
		}
		if _, err := q.Iter(ctx); !errors.Is(err, fire.ErrInvalidPath) {
			t.Errorf("Iter(%q): expected ErrInvalidPath, got %v", path, err)
		}
		if _, err := q.Snapshots(ctx); !errors.Is(err, fire.ErrInvalidPath) {
			t.Errorf("Snapshots(%q): expected ErrInvalidPath, got %v", path, err)
		}
	}
}

func TestQuery_ErrorCarriesThroughBuilder(t *testing.T) {
	c := fire.New(nil, fire.DefaultConfig())

	// Builder methods on a failed query must not panic and must keep the
	// original path error.
	q := c.Query("users/alice").
		Where("age", ">", 21).
		OrderBy("age", fire.Asc).
		Limit(5).
		Offset(2).
		StartAfter(30).
		Select("age")

	_, err := q.Documents(context.Background())
	if !errors.Is(err, fire.ErrInvalidPath) {
		t.Errorf("expected ErrInvalidPath, got %v", err)
	}
}

func TestQuery_BuilderReuse(t *testing.T) {
	c := newTestClient(t)

	// Value semantics: deriving from a base query must not mutate it.
	base := c.Query("users").Where("active", "==", true)
	byAge := base.OrderBy("age", fire.Asc)
	byName := base.OrderBy("name", fire.Desc).Limit(1)

	// Nothing to execute against, but all three must remain independently
	// valid builder values.
	for _, q := range []fire.Query{base, byAge, byName} {
		if _, err := q.Iter(context.Background()); err != nil {
			t.Errorf("expected valid query, got %v", err)
		}
	}
}

func TestQuery_DirectionConstants(t *testing.T) {
	if fire.Asc == fire.Desc {
		t.Error("expected distinct sort directions")
	}
}
