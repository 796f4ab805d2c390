package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedMap_SetGet(t *testing.T) {
	om := NewOrderedMap[string, int]()

	om.Set("verbose", 1)
	om.Set("count", 5)
	om.Set("dir", 0)

	v, found := om.Get("count")
	assert.True(t, found)
	assert.Equal(t, 5, v)

	om.Set("verbose", 3)
	assert.Equal(t, []string{"verbose", "count", "dir"}, om.Keys(), "set again keeps the position")

	_, found = om.Get("missing")
	assert.False(t, found)
	assert.True(t, om.Has("dir"))
	assert.Equal(t, 3, om.Len())
}

func TestOrderedMap_Delete(t *testing.T) {
	om := NewOrderedMap[int, []string]()
	om.Set(3, []string{"a"})
	om.Set(1, nil)
	om.Set(2, []string{"b", "c"})

	om.Delete(1)
	om.Delete(42)
	assert.Equal(t, []int{3, 2}, om.Keys())

	vals, found := om.Get(2)
	assert.True(t, found)
	assert.Equal(t, []string{"b", "c"}, vals)

	om.Set(1, []string{"again"})
	assert.Equal(t, []int{3, 2, 1}, om.Keys(), "a deleted key goes to the back")
}

func TestOrderedMap_Each(t *testing.T) {
	om := NewOrderedMap[string, any]()
	om.Set("name", "origin")
	om.Set("force", true)

	var seen []string
	om.Each(func(key string, val any) {
		seen = append(seen, key)
		assert.NotNil(t, val)
	})
	assert.Equal(t, []string{"name", "force"}, seen)

	var empty *OrderedMap[string, int]
	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.Keys())
}
