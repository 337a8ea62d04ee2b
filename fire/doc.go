// Package fire is a thin convenience layer over the Cloud Firestore Go SDK.
//
// It wraps client construction, document CRUD, batched writes, and query
// building behind a smaller, path-addressed surface. Every operation
// delegates to the SDK, which owns the wire protocol, authentication,
// retries, and consistency; this package only normalizes reference paths,
// stamps managed timestamps, and maps backend errors to sentinels.
//
// # Paths
//
// Documents and collections are addressed by slash-separated paths, cleaned
// before use:
//
//	"users/alice"          document
//	"users"                collection
//	"users/alice/posts"    subcollection
//
// A document path has an even number of segments, a collection path an odd
// number. Operations reject the wrong kind with [ErrInvalidPath] before any
// network call.
//
// # Usage
//
//	c, err := fire.Dial(ctx, fire.Config{ProjectID: "my-project"})
//	...
//	err = c.Set(ctx, "users/alice", map[string]interface{}{"age": 30})
//	doc, err := c.Get(ctx, "users/alice")
//
// Batched writes accumulate up to Config.BatchSize writes per underlying
// batch (default 500, the backend limit) and commit them in order on Flush:
//
//	b := c.Batch()
//	for _, u := range users {
//	    _ = b.Set("users/"+u.ID, u.Fields)
//	}
//	err := b.Flush(ctx)
//
// Queries are built with a copyable value builder:
//
//	docs, err := c.Query("users").
//	    Where("age", ">=", 21).
//	    OrderBy("age", fire.Asc).
//	    Limit(10).
//	    Documents(ctx)
//
// # Managed timestamps
//
// Unless Config.DisableTimestamps is set, writes stamp the configured
// created/updated fields (defaults "created_at"/"updated_at") with the
// backend's server timestamp.
//
// # Errors
//
// The package defines domain-specific errors:
//
//   - [ErrNotFound] - document doesn't exist
//   - [ErrExists] - create of an existing document
//   - [ErrInvalidPath] - malformed or wrong-kind reference path
//   - [ErrNilData] - nil data passed to a write
//   - [ErrNoProject] - Dial without a project ID
package fire
