package fire

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/woonysoft/woonysoft-fire/internal/refpath"
)

// Client is an opinionated façade over a Firestore client. All network I/O,
// retries, and consistency are the backend SDK's job; Client only normalizes
// paths, stamps managed timestamps, and maps errors.
type Client struct {
	fs     *firestore.Client
	config Config
}

// New wraps an externally supplied Firestore client.
func New(fs *firestore.Client, config Config) *Client {
	config.validate()
	return &Client{
		fs:     fs,
		config: config,
	}
}

// Dial builds a Firestore client from the config and wraps it.
// Credentials resolution: CredentialsFile, then CredentialsJSON, then
// Application Default Credentials. The FIRESTORE_EMULATOR_HOST environment
// variable is honored by the SDK itself.
func Dial(ctx context.Context, config Config) (*Client, error) {
	config.validate()
	if config.ProjectID == "" {
		return nil, ErrNoProject
	}

	var opts []option.ClientOption
	switch {
	case config.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(config.CredentialsFile))
	case len(config.CredentialsJSON) > 0:
		opts = append(opts, option.WithCredentialsJSON(config.CredentialsJSON))
	}

	fs, err := firestore.NewClient(ctx, config.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("fire: dial: %w", err)
	}
	return New(fs, config), nil
}

// Backend returns the wrapped Firestore client for operations this package
// doesn't cover, or nil if not set.
func (c *Client) Backend() *firestore.Client {
	return c.fs
}

// Close closes the underlying client.
func (c *Client) Close() error {
	return c.fs.Close()
}

// docRef resolves a document path, validating it before touching the SDK.
func (c *Client) docRef(path string) (*firestore.DocumentRef, error) {
	p := refpath.Clean(path)
	if !refpath.IsDocument(p) {
		return nil, fmt.Errorf("%w: %q is not a document path", ErrInvalidPath, path)
	}
	return c.fs.Doc(p), nil
}

// collRef resolves a collection path, validating it before touching the SDK.
func (c *Client) collRef(path string) (*firestore.CollectionRef, error) {
	p := refpath.Clean(path)
	if p == "" || !refpath.IsCollection(p) {
		return nil, fmt.Errorf("%w: %q is not a collection path", ErrInvalidPath, path)
	}
	return c.fs.Collection(p), nil
}

// Get retrieves a document by path, returning ErrNotFound if missing.
func (c *Client) Get(ctx context.Context, path string) (*Document, error) {
	ref, err := c.docRef(path)
	if err != nil {
		return nil, err
	}
	snap, err := ref.Get(ctx)
	if err != nil {
		return nil, mapStatus("get", err)
	}
	if !snap.Exists() {
		return nil, ErrNotFound
	}
	return FromSnapshot(snap), nil
}

// Exists reports whether a document exists.
func (c *Client) Exists(ctx context.Context, path string) (bool, error) {
	_, err := c.Get(ctx, path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return false, err
}

// Create creates a document, returning ErrExists if it is already present.
func (c *Client) Create(ctx context.Context, path string, data map[string]interface{}) error {
	ref, err := c.docRef(path)
	if err != nil {
		return err
	}
	if data == nil {
		return ErrNilData
	}
	if _, err := ref.Create(ctx, c.stampCreate(data)); err != nil {
		return mapStatus("create", err)
	}
	return nil
}

// Set writes a document, overwriting any existing contents.
func (c *Client) Set(ctx context.Context, path string, data map[string]interface{}) error {
	ref, err := c.docRef(path)
	if err != nil {
		return err
	}
	if data == nil {
		return ErrNilData
	}
	if _, err := ref.Set(ctx, c.stampCreate(data)); err != nil {
		return mapStatus("set", err)
	}
	return nil
}

// Merge writes the given fields into a document, creating it if missing and
// leaving unmentioned fields intact.
func (c *Client) Merge(ctx context.Context, path string, data map[string]interface{}) error {
	ref, err := c.docRef(path)
	if err != nil {
		return err
	}
	if data == nil {
		return ErrNilData
	}
	if _, err := ref.Set(ctx, c.stampUpdate(data), firestore.MergeAll); err != nil {
		return mapStatus("merge", err)
	}
	return nil
}

// Update updates specific fields of an existing document, returning
// ErrNotFound if it doesn't exist.
func (c *Client) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	ref, err := c.docRef(path)
	if err != nil {
		return err
	}
	if fields == nil {
		return ErrNilData
	}

	updates := make([]firestore.Update, 0, len(fields)+1)
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	if !c.config.DisableTimestamps {
		updates = append(updates, firestore.Update{
			Path:  c.config.UpdatedField,
			Value: firestore.ServerTimestamp,
		})
	}

	if _, err := ref.Update(ctx, updates); err != nil {
		return mapStatus("update", err)
	}
	return nil
}

// Delete deletes a document. Deleting a missing document is not an error.
func (c *Client) Delete(ctx context.Context, path string) error {
	ref, err := c.docRef(path)
	if err != nil {
		return err
	}
	if _, err := ref.Delete(ctx); err != nil {
		return mapStatus("delete", err)
	}
	return nil
}

// Add creates a document in a collection under a generated identifier and
// returns it. The returned document carries the caller's data; timestamps
// are zero until read back.
func (c *Client) Add(ctx context.Context, collection string, data map[string]interface{}) (*Document, error) {
	coll, err := c.collRef(collection)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrNilData
	}

	id := uuid.NewString()
	ref := coll.Doc(id)
	if _, err := ref.Create(ctx, c.stampCreate(data)); err != nil {
		return nil, mapStatus("add", err)
	}

	return &Document{
		ID:   id,
		Path: relPath(ref),
		Data: data,
	}, nil
}

// GetAll retrieves multiple documents in one backend round trip.
// Missing documents are skipped, so the result may be shorter than paths.
func (c *Client) GetAll(ctx context.Context, paths ...string) ([]*Document, error) {
	refs := make([]*firestore.DocumentRef, len(paths))
	for i, p := range paths {
		ref, err := c.docRef(p)
		if err != nil {
			return nil, err
		}
		refs[i] = ref
	}

	snaps, err := c.fs.GetAll(ctx, refs)
	if err != nil {
		return nil, mapStatus("get all", err)
	}

	docs := make([]*Document, 0, len(snaps))
	for _, snap := range snaps {
		if snap.Exists() {
			docs = append(docs, FromSnapshot(snap))
		}
	}
	return docs, nil
}

// Documents lists every document in a collection.
func (c *Client) Documents(ctx context.Context, collection string) ([]*Document, error) {
	coll, err := c.collRef(collection)
	if err != nil {
		return nil, err
	}

	it := coll.Documents(ctx)
	defer it.Stop()

	var docs []*Document
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStatus("list documents", err)
		}
		docs = append(docs, FromSnapshot(snap))
	}
	return docs, nil
}

// DeleteCollection deletes every document in a collection, draining it in
// batch-sized pages. Subcollections of the deleted documents are untouched.
func (c *Client) DeleteCollection(ctx context.Context, collection string) error {
	coll, err := c.collRef(collection)
	if err != nil {
		return err
	}

	for {
		// Keys only; Select() with no fields skips document contents.
		it := coll.Select().Limit(c.config.BatchSize).Documents(ctx)
		batch := c.Batch()
		n := 0
		for {
			snap, err := it.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				it.Stop()
				return mapStatus("delete collection", err)
			}
			if err := batch.Delete(relPath(snap.Ref)); err != nil {
				it.Stop()
				return err
			}
			n++
		}
		it.Stop()

		if n == 0 {
			return nil
		}
		if err := batch.Flush(ctx); err != nil {
			return err
		}
	}
}

// stampCreate copies data with both managed timestamp fields set to the
// backend server timestamp. The caller's map is never mutated.
func (c *Client) stampCreate(data map[string]interface{}) map[string]interface{} {
	if c.config.DisableTimestamps {
		return data
	}
	out := make(map[string]interface{}, len(data)+2)
	for k, v := range data {
		out[k] = v
	}
	out[c.config.CreatedField] = firestore.ServerTimestamp
	out[c.config.UpdatedField] = firestore.ServerTimestamp
	return out
}

// stampUpdate copies data with only the updated-at field stamped.
func (c *Client) stampUpdate(data map[string]interface{}) map[string]interface{} {
	if c.config.DisableTimestamps {
		return data
	}
	out := make(map[string]interface{}, len(data)+1)
	for k, v := range data {
		out[k] = v
	}
	out[c.config.UpdatedField] = firestore.ServerTimestamp
	return out
}
