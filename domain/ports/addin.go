package ports

import "github.com/reglet-dev/addin-sdk/go/domain/entities"

// AddIn is the component logic driven by the host through the language
// extender, locale and user-language tables.
//
// Property and method numbers are stable 0-based indexes into the
// component's name tables. alias 0 selects the primary name, any other
// value the localized alternate name.
//
// The bridge performs no locking: if the host calls in from several
// threads, the implementation must protect its own state.
type AddIn interface {
	// ExtensionName is the name returned to RegisterExtensionAs.
	ExtensionName() entities.UTF16

	NProps() int
	FindProp(name entities.UTF16) (int, bool)
	PropName(num, alias int) (entities.UTF16, bool)
	PropVal(num int) (entities.Value, error)
	SetPropVal(num int, val entities.Value) error
	IsPropReadable(num int) bool
	IsPropWritable(num int) bool

	NMethods() int
	FindMethod(name entities.UTF16) (int, bool)
	MethodName(num, alias int) (entities.UTF16, bool)
	NParams(num int) int
	// ParamDefValue returns the default for an omitted parameter, if any.
	ParamDefValue(method, param int) (entities.Value, bool)
	HasRetVal(num int) bool

	// CallAsProc runs a method. Parameters changed through params are
	// written back to the host's argument slots on success.
	CallAsProc(num int, params *entities.Params) error
	// CallAsFunc runs a method and returns its result.
	CallAsFunc(num int, params *entities.Params) (entities.Value, error)

	SetLocale(loc entities.UTF16)
	SetUserInterfaceLanguageCode(lang entities.UTF16)
}

// Lifecycle is implemented by components that need the host connection or
// a teardown hook. It is optional.
type Lifecycle interface {
	// Init receives the host connection. Returning an error fails the host's Init call.
	Init(conn Connection) error
	// Done is called before the host destroys the object.
	Done()
}

// Factory creates a fresh component instance for one host object.
type Factory func() AddIn
