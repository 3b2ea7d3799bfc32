// Package memory provides in-memory implementations of the store
// interfaces. Each store guards its backing slice with a single mutex, so
// all mutations are atomic with respect to each other even though the data
// itself does not survive a process restart.
package memory
