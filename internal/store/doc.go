// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying storage mechanism from the
// application's core logic; the only implementation shipped today is the
// in-memory one in the memory subpackage.
package store
