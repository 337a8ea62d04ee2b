package fire

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/woonysoft/woonysoft-fire/internal/refpath"
)

// Direction is the sort direction for OrderBy.
type Direction = firestore.Direction

const (
	Asc  = firestore.Asc
	Desc = firestore.Desc
)

// Query builds a collection query. Builder methods return copies, so a Query
// value can be reused as a prefix. A path error from Client.Query is carried
// and surfaced by the terminal operations.
type Query struct {
	q   firestore.Query
	err error
}

// Query starts a query over a collection.
func (c *Client) Query(collection string) Query {
	p := refpath.Clean(collection)
	if p == "" || !refpath.IsCollection(p) {
		return Query{err: fmt.Errorf("%w: %q is not a collection path", ErrInvalidPath, collection)}
	}
	return Query{q: c.fs.Collection(p).Query}
}

// Where adds a field filter. The operator is passed to the backend as-is
// ("==", "<", "array-contains", "in", ...).
func (q Query) Where(field, op string, value interface{}) Query {
	if q.err != nil {
		return q
	}
	q.q = q.q.Where(field, op, value)
	return q
}

// OrderBy adds a sort key.
func (q Query) OrderBy(field string, dir Direction) Query {
	if q.err != nil {
		return q
	}
	q.q = q.q.OrderBy(field, dir)
	return q
}

// Limit caps the number of results.
func (q Query) Limit(n int) Query {
	if q.err != nil {
		return q
	}
	q.q = q.q.Limit(n)
	return q
}

// Offset skips the first n results.
func (q Query) Offset(n int) Query {
	if q.err != nil {
		return q
	}
	q.q = q.q.Offset(n)
	return q
}

// StartAfter resumes after the given sort key values. Requires OrderBy.
func (q Query) StartAfter(values ...interface{}) Query {
	if q.err != nil {
		return q
	}
	q.q = q.q.StartAfter(values...)
	return q
}

// Select restricts returned documents to the given fields.
func (q Query) Select(fields ...string) Query {
	if q.err != nil {
		return q
	}
	q.q = q.q.Select(fields...)
	return q
}

// Documents executes the query and collects all results.
func (q Query) Documents(ctx context.Context) ([]*Document, error) {
	if q.err != nil {
		return nil, q.err
	}

	it := q.q.Documents(ctx)
	defer it.Stop()

	var docs []*Document
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStatus("query", err)
		}
		docs = append(docs, FromSnapshot(snap))
	}
	return docs, nil
}

// First executes the query with a limit of one, returning ErrNotFound when
// nothing matches.
func (q Query) First(ctx context.Context) (*Document, error) {
	docs, err := q.Limit(1).Documents(ctx)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return docs[0], nil
}

// Iter returns the backend's streaming iterator for callers that don't want
// results collected in memory. The caller must Stop it.
func (q Query) Iter(ctx context.Context) (*firestore.DocumentIterator, error) {
	if q.err != nil {
		return nil, q.err
	}
	return q.q.Documents(ctx), nil
}

// Snapshots returns the backend's snapshot-listener iterator for the query.
// The caller must Stop it.
func (q Query) Snapshots(ctx context.Context) (*firestore.QuerySnapshotIterator, error) {
	if q.err != nil {
		return nil, q.err
	}
	return q.q.Snapshots(ctx), nil
}
