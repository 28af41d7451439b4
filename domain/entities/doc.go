// Package entities provides the value model shared by add-in components and the ABI bridge.
// These types are owned, safe Go values: nothing here points into host memory.
package entities
