// Package orderedmap provides a typed, insertion-ordered map on top of github.com/wk8/go-ordered-map.
package orderedmap

import (
	wk8 "github.com/wk8/go-ordered-map"
)

// OrderedMap keeps its keys in insertion order. The zero value is not usable, see NewOrderedMap.
type OrderedMap[K comparable, V any] struct {
	om *wk8.OrderedMap
}

// NewOrderedMap creates an empty OrderedMap
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{om: wk8.New()}
}

// Set stores val under key. A key set again keeps its original position.
func (o *OrderedMap[K, V]) Set(key K, val V) {
	o.om.Set(key, val)
}

// Get returns the value of key and whether it is present
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	val, found := o.om.Get(key)
	if !found {
		var zero V
		return zero, false
	}
	v, _ := val.(V)

	return v, true
}

func (o *OrderedMap[K, V]) Has(key K) bool {
	_, found := o.om.Get(key)
	return found
}

func (o *OrderedMap[K, V]) Delete(key K) {
	o.om.Delete(key)
}

// Len returns the number of keys; nil maps are empty
func (o *OrderedMap[K, V]) Len() int {
	if o == nil {
		return 0
	}

	return o.om.Len()
}

// Keys returns the keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.Len())
	o.Each(func(key K, _ V) {
		keys = append(keys, key)
	})

	return keys
}

// Each calls f for every entry in insertion order
func (o *OrderedMap[K, V]) Each(f func(key K, val V)) {
	if o == nil {
		return
	}
	for pair := o.om.Oldest(); pair != nil; pair = pair.Next() {
		v, _ := pair.Value.(V)
		f(pair.Key.(K), v)
	}
}
