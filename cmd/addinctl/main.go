// Command addinctl inspects the add-in bridge: the host-visible ABI layout,
// the component manifest schema and the manifests of bundled components.
package main

import (
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
