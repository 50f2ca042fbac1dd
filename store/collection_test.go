package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string
	Name string
}

func newItems() *indexed[item] {
	return newIndexed(
		func(i item) string { return i.ID },
		func(i *item, id string) { i.ID = id },
	)
}

func TestIndexedRemoveReindexes(t *testing.T) {
	c := newItems()
	c.Append(item{ID: "a"})
	c.Append(item{ID: "b"})
	c.Append(item{ID: "c"})

	removed, ok := c.Remove("b")
	require.True(t, ok)
	assert.Equal(t, "b", removed.ID)

	got, ok := c.At("c")
	require.True(t, ok)
	assert.Equal(t, "c", got.ID)
	assert.Equal(t, []item{{ID: "a"}, {ID: "c"}}, c.Items())

	_, ok = c.Remove("b")
	assert.False(t, ok)
}

func TestIndexedPatchIDKeepsPosition(t *testing.T) {
	c := newItems()
	c.Append(item{ID: "tmp_1", Name: "first"})
	c.Append(item{ID: "tmp_2", Name: "second"})

	require.True(t, c.PatchID("tmp_1", "srv_9"))
	items := c.Items()
	assert.Equal(t, "srv_9", items[0].ID)
	assert.Equal(t, "first", items[0].Name)

	_, ok := c.At("tmp_1")
	assert.False(t, ok, "old id no longer resolves")
	got, ok := c.At("srv_9")
	require.True(t, ok)
	assert.Equal(t, "first", got.Name)

	assert.False(t, c.PatchID("gone", "x"))
}

func TestIndexedTrimFront(t *testing.T) {
	c := newItems()
	c.Append(item{ID: "a"})
	c.Append(item{ID: "b"})
	c.Append(item{ID: "c"})

	c.TrimFront(2)
	assert.Equal(t, []item{{ID: "b"}, {ID: "c"}}, c.Items())
	_, ok := c.At("a")
	assert.False(t, ok)
	got, ok := c.At("b")
	require.True(t, ok)
	assert.Equal(t, "b", got.ID)

	c.TrimFront(5)
	assert.Equal(t, 2, c.Len())
}
