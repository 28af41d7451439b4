// Package ports defines the interfaces the bridge consumes and provides.
// Component logic implements AddIn; the host side (or a test double)
// implements Allocator and Connection.
package ports
