// Package mocks provides centralized mock implementations for testing.
//
// Each mock has one function field per interface method. A nil field falls
// back to the mock's default values, so tests only set what they exercise:
//
//	gen := &mocks.MockGenerator{
//	    GenerateFn: func(ctx context.Context, topic string) ([]domain.Suggestion, error) {
//	        return nil, generation.ErrContentBlocked
//	    },
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Add a compile-time assertion against the interface where no import cycle forbids it
package mocks
