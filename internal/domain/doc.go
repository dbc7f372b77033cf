// Package domain contains the core business entities, value objects, and
// domain logic of the application: tasks, the partial updates applied to them,
// generated task suggestions, and the completion statistics derived from an
// owner's tasks. It is independent of any specific storage or delivery mechanism.
package domain
