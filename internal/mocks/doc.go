// Package mocks provides shared test doubles for the generation and token
// service interfaces, so handler, dispatcher and binary tests can script
// behavior and inspect calls without a network.
//
// Usage:
//
//	gen := mocks.NewMockGeneratorWithText("Tomato soup")
//	d, _ := dispatch.New(gen, &out, logger)
//	...
//	assert.Equal(t, 1, gen.CallCount())
package mocks
