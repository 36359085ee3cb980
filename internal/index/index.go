// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package index implements a generic sorted in-memory search index.
package index

import (
	"slices"
	"sort"
	"strings"
)

type item[V any] struct {
	key   string
	value V
}

// Index is a sorted array index of values by string key. Values with equal
// keys keep the order they were given in.
type Index[V any] struct {
	items []item[V]
}

// New creates an index of values. key returns the search key of a value.
func New[V any](values []V, key func(V) string) *Index[V] {
	items := make([]item[V], len(values))
	for i, v := range values {
		items[i] = item[V]{
			key:   key(v),
			value: v,
		}
	}
	slices.SortStableFunc(items, func(a, b item[V]) int {
		return strings.Compare(a.key, b.key)
	})

	return &Index[V]{
		items: items,
	}
}

// Len returns the number of values in the index.
func (x *Index[V]) Len() int {
	return len(x.items)
}

// Search performs a binary search over the index and returns the values
// whose key equals query.
func (x *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(x.items), func(i int) int {
		return strings.Compare(query, x.items[i].key)
	})
	if !found {
		return nil
	}

	var values []V
	for ; i < len(x.items) && x.items[i].key == query; i++ {
		values = append(values, x.items[i].value)
	}
	return values
}

// Prefix returns the values whose key starts with prefix in key order.
func (x *Index[V]) Prefix(prefix string) []V {
	i := sort.Search(len(x.items), func(i int) bool {
		return x.items[i].key >= prefix
	})

	var values []V
	for ; i < len(x.items) && strings.HasPrefix(x.items[i].key, prefix); i++ {
		values = append(values, x.items[i].value)
	}
	return values
}
