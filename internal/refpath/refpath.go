// Package refpath provides reference-path normalization for Firestore-style
// slash-separated paths. A collection path has an odd number of segments, a
// document path has an even number.
package refpath

import "strings"

// Clean normalizes a path: trims surrounding whitespace and slashes and
// collapses runs of slashes. Clean("/users//alice/") == "users/alice".
func Clean(p string) string {
	p = strings.TrimSpace(p)
	parts := strings.Split(p, "/")
	kept := parts[:0]
	for _, s := range parts {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, "/")
}

// Segments returns the slash-separated segments of a cleaned path.
// The empty path has no segments.
func Segments(p string) []string {
	p = Clean(p)
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// IsDocument reports whether p addresses a document (non-empty, even number
// of segments).
func IsDocument(p string) bool {
	n := len(Segments(p))
	return n > 0 && n%2 == 0
}

// IsCollection reports whether p addresses a collection (odd number of
// segments).
func IsCollection(p string) bool {
	return len(Segments(p))%2 == 1
}

// Join joins path parts into a single cleaned path. Empty parts are dropped.
func Join(parts ...string) string {
	return Clean(strings.Join(parts, "/"))
}

// ID returns the final segment of a path, or "" for the empty path.
func ID(p string) string {
	segs := Segments(p)
	if len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1]
}

// Parent returns the path with its final segment removed. The parent of a
// document is its collection; the parent of a top-level collection is "".
func Parent(p string) string {
	segs := Segments(p)
	if len(segs) <= 1 {
		return ""
	}
	return strings.Join(segs[:len(segs)-1], "/")
}
