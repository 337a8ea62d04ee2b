package fire

import (
	"context"

	"cloud.google.com/go/firestore"
)

// Batch accumulates writes, opening a new underlying write batch whenever
// the current one reaches Config.BatchSize. Nothing is sent to the backend
// until Flush. Batch is not safe for concurrent use.
type Batch struct {
	c       *Client
	pending []*firestore.WriteBatch // full batches awaiting commit
	counts  []int                   // writes per pending batch
	cur     *firestore.WriteBatch
	n       int // writes in cur
}

// Batch returns an empty write accumulator.
func (c *Client) Batch() *Batch {
	return &Batch{c: c}
}

// add queues one write, rolling over to a fresh batch at the size limit.
func (b *Batch) add(apply func(*firestore.WriteBatch)) {
	if b.cur == nil {
		b.cur = b.c.fs.Batch()
	}
	apply(b.cur)
	b.n++
	if b.n >= b.c.config.BatchSize {
		b.pending = append(b.pending, b.cur)
		b.counts = append(b.counts, b.n)
		b.cur = nil
		b.n = 0
	}
}

// Set queues a full-document write.
func (b *Batch) Set(path string, data map[string]interface{}) error {
	ref, err := b.c.docRef(path)
	if err != nil {
		return err
	}
	if data == nil {
		return ErrNilData
	}
	stamped := b.c.stampCreate(data)
	b.add(func(wb *firestore.WriteBatch) { wb.Set(ref, stamped) })
	return nil
}

// Create queues a create; the commit fails if the document exists.
func (b *Batch) Create(path string, data map[string]interface{}) error {
	ref, err := b.c.docRef(path)
	if err != nil {
		return err
	}
	if data == nil {
		return ErrNilData
	}
	stamped := b.c.stampCreate(data)
	b.add(func(wb *firestore.WriteBatch) { wb.Create(ref, stamped) })
	return nil
}

// Update queues a partial update of an existing document.
func (b *Batch) Update(path string, fields map[string]interface{}) error {
	ref, err := b.c.docRef(path)
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
	if !b.c.config.DisableTimestamps {
		updates = append(updates, firestore.Update{
			Path:  b.c.config.UpdatedField,
			Value: firestore.ServerTimestamp,
		})
	}
	b.add(func(wb *firestore.WriteBatch) { wb.Update(ref, updates) })
	return nil
}

// Delete queues a document delete. Deleting a missing document is not an
// error at commit time.
func (b *Batch) Delete(path string) error {
	ref, err := b.c.docRef(path)
	if err != nil {
		return err
	}
	b.add(func(wb *firestore.WriteBatch) { wb.Delete(ref) })
	return nil
}

// Len returns the number of queued, uncommitted writes.
func (b *Batch) Len() int {
	total := b.n
	for _, n := range b.counts {
		total += n
	}
	return total
}

// Flush commits all accumulated batches in the order the writes were queued,
// stopping at the first error; writes in batches already committed stay
// committed. After a successful Flush the accumulator is empty and reusable.
// Flushing an empty accumulator is a no-op.
func (b *Batch) Flush(ctx context.Context) error {
	if b.cur != nil {
		b.pending = append(b.pending, b.cur)
		b.counts = append(b.counts, b.n)
		b.cur = nil
		b.n = 0
	}

	for len(b.pending) > 0 {
		if _, err := b.pending[0].Commit(ctx); err != nil {
			return mapStatus("batch commit", err)
		}
		b.pending = b.pending[1:]
		b.counts = b.counts[1:]
	}
	return nil
}
