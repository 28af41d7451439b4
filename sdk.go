// Package sdk is the entry point for building a 1C add-in library in Go.
//
// A library registers its components from init and is built with
// -buildmode=c-shared:
//
//	type Calculator struct {
//		sdk.Component `name:"Calculator"`
//		AddOp         sdk.Method `name:"Add" alias:"Сложить"`
//	}
//
//	func (c *Calculator) Add(a, b float64) float64 { return a + b }
//
//	func init() { sdk.MustRegister(func() *Calculator { return &Calculator{} }) }
//
//	func main() {}
//
// The exported GetClassObject, DestroyObject, GetClassNames,
// SetPlatformCapabilities and GetAttachType come from importing this package.
package sdk

import (
	"fmt"

	"github.com/reglet-dev/addin-sdk/go/application/addin"
	"github.com/reglet-dev/addin-sdk/go/config"
	"github.com/reglet-dev/addin-sdk/go/domain/entities"
	"github.com/reglet-dev/addin-sdk/go/domain/ports"
	"github.com/reglet-dev/addin-sdk/go/internal/native"
)

// Register adds a declarative component under the name on its embedded
// Component. newTarget is called once per host object. The definition is
// checked immediately, so tag errors surface at registration.
func Register[T any](newTarget func() *T) error {
	def, err := addin.Define(newTarget())
	if err != nil {
		return err
	}
	return RegisterFactory(def.Name(), addin.Factory(newTarget))
}

// MustRegister is like Register but panics on error. Use it in init().
func MustRegister[T any](newTarget func() *T) {
	if err := Register(newTarget); err != nil {
		panic(fmt.Sprintf("failed to register component: %v", err))
	}
}

// RegisterFactory adds a hand-written ports.AddIn under class name.
func RegisterFactory(name string, factory ports.Factory) error {
	return native.Default().Registry().Register(name, factory)
}

// Configure applies cfg to every object created afterwards. Without it the
// library reads the file named by the ADDIN_CONFIG environment variable.
func Configure(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	native.Default().Configure(cfg.ComponentOptions()...)
	return nil
}

// ClassNames lists the registered class names in registration order.
func ClassNames() []string {
	return native.Default().Registry().List()
}

// Manifests describes every registered declarative component.
func Manifests() []*entities.Manifest {
	return native.Default().Registry().Manifests()
}
