// Package memory provides a process-local implementation of store.TaskStore.
//
// Tasks live in an insertion-ordered slice guarded by a read/write mutex and are
// lost when the process exits. Each store is an explicitly constructed value, so
// tests and servers own independent instances.
package memory
