// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides a small generic LRU cache.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// The canvas uses it to keep recently generated brush stamps, so that the
// many short strokes of a pointer drag do not regenerate the same dab.
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
