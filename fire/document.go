package fire

import (
	"strings"
	"time"

	"cloud.google.com/go/firestore"
)

// Document is a retrieved document with its identifier and metadata.
type Document struct {
	// ID is the document identifier (the final path segment).
	// Always present and mirrors the underlying reference.
	ID string

	// Path is the slash-separated reference path (e.g. "users/alice").
	Path string

	// Data holds the document fields. Nil for documents that were written
	// locally but not read back.
	Data map[string]interface{}

	// CreateTime and UpdateTime are the backend's document timestamps.
	// Zero for documents not read from the backend.
	CreateTime time.Time
	UpdateTime time.Time
}

// Field returns a top-level field value and whether it was present.
func (d *Document) Field(name string) (interface{}, bool) {
	v, ok := d.Data[name]
	return v, ok
}

// FromSnapshot converts a backend document snapshot to a Document.
// The identifier and path are taken from the snapshot's reference, never
// from the field data.
func FromSnapshot(snap *firestore.DocumentSnapshot) *Document {
	d := &Document{
		ID:   snap.Ref.ID,
		Path: relPath(snap.Ref),
	}
	if snap.Exists() {
		d.Data = snap.Data()
		d.CreateTime = snap.CreateTime
		d.UpdateTime = snap.UpdateTime
	}
	return d
}

// relPath strips the backend resource prefix
// ("projects/P/databases/D/documents/") from a reference path.
func relPath(ref *firestore.DocumentRef) string {
	const marker = "/documents/"
	if i := strings.Index(ref.Path, marker); i >= 0 {
		return ref.Path[i+len(marker):]
	}
	return ref.Path
}
