package store

// indexed keeps an ordered slice alongside an id index, so lookups, in-place
// edits, and temp-id to server-id patches avoid rescanning the collection.
// Items keep their position when their id is patched.
type indexed[T any] struct {
	items []T
	byID  map[string]int
	getID func(T) string
	setID func(*T, string)
}

func newIndexed[T any](getID func(T) string, setID func(*T, string)) *indexed[T] {
	return &indexed[T]{
		byID:  map[string]int{},
		getID: getID,
		setID: setID,
	}
}

func (c *indexed[T]) Len() int {
	return len(c.items)
}

// Items returns a copy of the ordered slice.
func (c *indexed[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *indexed[T]) Append(item T) {
	c.byID[c.getID(item)] = len(c.items)
	c.items = append(c.items, item)
}

// At returns a pointer to the item with the given id for in-place edits.
func (c *indexed[T]) At(id string) (*T, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.items[i], true
}

// Remove deletes the item with the given id, preserving the order of the
// remaining items.
func (c *indexed[T]) Remove(id string) (T, bool) {
	var zero T
	i, ok := c.byID[id]
	if !ok {
		return zero, false
	}
	removed := c.items[i]
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.byID, id)
	for j := i; j < len(c.items); j++ {
		c.byID[c.getID(c.items[j])] = j
	}
	return removed, true
}

// PatchID swaps a client temp id for the server-assigned id. The item keeps
// its position and every other field. Returns false when the temp id is gone,
// e.g. evicted or cleared before the create was acknowledged.
func (c *indexed[T]) PatchID(oldID, newID string) bool {
	i, ok := c.byID[oldID]
	if !ok {
		return false
	}
	c.setID(&c.items[i], newID)
	delete(c.byID, oldID)
	c.byID[newID] = i
	return true
}

// Replace swaps the whole collection for items, rebuilding the index.
func (c *indexed[T]) Replace(items []T) {
	c.items = append(c.items[:0:0], items...)
	c.byID = make(map[string]int, len(items))
	for i, item := range c.items {
		c.byID[c.getID(item)] = i
	}
}

// TrimFront drops the oldest items until at most max remain.
func (c *indexed[T]) TrimFront(max int) {
	if len(c.items) <= max {
		return
	}
	drop := len(c.items) - max
	for _, item := range c.items[:drop] {
		delete(c.byID, c.getID(item))
	}
	c.items = append(c.items[:0:0], c.items[drop:]...)
	for i, item := range c.items {
		c.byID[c.getID(item)] = i
	}
}
