// Package abi reproduces the host's binary layouts in Go and converts between
// them and the owned value model.
//
// Everything in this package works on raw memory through unsafe. Host memory
// is only ever read during a call or written through a ports.Allocator; no
// pointer taken from an incoming Variant outlives the call that received it.
package abi
