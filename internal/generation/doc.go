// Package generation defines the contract for producing task suggestions from a
// topic, and provides the stub implementation used when no LLM is configured.
//
// The Generator interface is the only thing other components depend on: a real
// LLM-backed implementation (see platform/gemini) can replace the stub without
// any change to callers.
package generation
