// Package events provides task lifecycle events and an in-process emitter.
//
// Services emit events after successful mutations without knowing which
// handlers will process them. The primary components are:
// - TaskEvent: a record of something that happened to an owner's tasks
// - EventHandler: interface for components that can handle events
// - EventEmitter: interface for components that can emit events
// - AuditLogHandler: writes one structured log line per event
// - AsyncDispatcher: delivers events to a handler from a bounded worker pool
package events
