package storage

// Record is implemented by every entity kept in a collection.
type Record interface {
	RecordID() string
}

// Collection is a typed view over the records stored under one key.
// Every mutation is a full read-modify-write of the key.
type Collection[T Record] struct {
	store *Store
	key   string
}

func NewCollection[T Record](store *Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

func (c *Collection[T]) Store() *Store { return c.store }

// All returns every record in insertion order.
func (c *Collection[T]) All() ([]T, error) {
	return ReadCollection[T](c.store, c.key)
}

func (c *Collection[T]) FindByID(id string) (T, bool, error) {
	return c.Find(func(r T) bool { return r.RecordID() == id })
}

// Find returns the first record matching pred.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool, error) {
	var zero T
	records, err := c.All()
	if err != nil {
		return zero, false, err
	}
	for _, r := range records {
		if pred(r) {
			return r, true, nil
		}
	}
	return zero, false, nil
}

// Filter returns all records matching pred, in insertion order.
func (c *Collection[T]) Filter(pred func(T) bool) ([]T, error) {
	records, err := c.All()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Insert appends rec to the end of the collection.
func (c *Collection[T]) Insert(rec T) error {
	records, err := c.All()
	if err != nil {
		return err
	}
	return WriteCollection(c.store, c.key, append(records, rec))
}

// Update applies fn to the record with the given id and persists it in place.
// ok is false, and nothing is written, when no record has that id.
func (c *Collection[T]) Update(id string, fn func(*T)) (T, bool, error) {
	return c.UpdateWhere(func(r T) bool { return r.RecordID() == id }, fn)
}

// UpdateWhere applies fn to the first record matching pred.
func (c *Collection[T]) UpdateWhere(pred func(T) bool, fn func(*T)) (T, bool, error) {
	var zero T
	records, err := c.All()
	if err != nil {
		return zero, false, err
	}
	for i := range records {
		if !pred(records[i]) {
			continue
		}
		fn(&records[i])
		if err := WriteCollection(c.store, c.key, records); err != nil {
			return zero, false, err
		}
		return records[i], true, nil
	}
	return zero, false, nil
}

// DeleteWhere removes every record matching pred and returns how many were
// removed. The collection is only rewritten when something was removed.
func (c *Collection[T]) DeleteWhere(pred func(T) bool) (int, error) {
	records, err := c.All()
	if err != nil {
		return 0, err
	}
	kept := make([]T, 0, len(records))
	for _, r := range records {
		if !pred(r) {
			kept = append(kept, r)
		}
	}
	removed := len(records) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, WriteCollection(c.store, c.key, kept)
}
