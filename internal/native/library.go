// Package native connects components to the host through the 1C Native API:
// the C function tables of an add-in object, the proxies for the host memory
// manager and connection, and the library entry points.
package native

import (
	"fmt"
	"log/slog"
	"runtime/cgo"
	"runtime/debug"
	"sync"
	"unsafe"

	"github.com/reglet-dev/addin-sdk/go/application/component"
	"github.com/reglet-dev/addin-sdk/go/application/registry"
	"github.com/reglet-dev/addin-sdk/go/config"
	"github.com/reglet-dev/addin-sdk/go/domain/entities"
	sdkerrors "github.com/reglet-dev/addin-sdk/go/domain/errors"
	"github.com/reglet-dev/addin-sdk/go/internal/abi"
)

// Host enum values reported by the library entry points.
const (
	// AppCapabilities3 is the newest platform capability level understood.
	AppCapabilities3 = 3
	// AttachAny lets the host load the library in or out of its process.
	AttachAny = 3
)

// Library creates and destroys the objects handed to the host.
type Library struct {
	classes *registry.Registry
	logger  *slog.Logger
	vtables [4]unsafe.Pointer
	alloc   func() *abi.Object
	release func(*abi.Object)
	load    func() (config.Config, error)

	once         sync.Once
	mu           sync.RWMutex
	opts         []component.Option
	configured   bool
	capabilities int
}

// LibraryOption configures a Library.
type LibraryOption func(*Library)

// WithVTables sets the function tables installed in every object.
func WithVTables(initDone, langExtender, locale, userLanguage unsafe.Pointer) LibraryOption {
	return func(l *Library) {
		l.vtables = [4]unsafe.Pointer{initDone, langExtender, locale, userLanguage}
	}
}

// WithObjectMemory sets how object storage is obtained and released. The
// storage must be zeroed and must not move.
func WithObjectMemory(alloc func() *abi.Object, release func(*abi.Object)) LibraryOption {
	return func(l *Library) {
		l.alloc = alloc
		l.release = release
	}
}

// WithConfigLoader sets the configuration read before the first object is
// created, unless Configure was called first.
func WithConfigLoader(load func() (config.Config, error)) LibraryOption {
	return func(l *Library) {
		l.load = load
	}
}

// WithLogger sets the logger for entry point failures.
func WithLogger(logger *slog.Logger) LibraryOption {
	return func(l *Library) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLibrary creates a Library serving the classes registered in classes.
func NewLibrary(classes *registry.Registry, opts ...LibraryOption) *Library {
	l := &Library{
		classes: classes,
		logger:  slog.Default(),
		alloc:   func() *abi.Object { return new(abi.Object) },
		release: func(*abi.Object) {},
		load:    func() (config.Config, error) { return config.Default(), nil },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Registry returns the class table.
func (l *Library) Registry() *registry.Registry { return l.classes }

// Configure sets the options applied to every object created afterwards and
// disables the configuration loader.
func (l *Library) Configure(opts ...component.Option) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.opts = opts
	l.configured = true
}

func (l *Library) options() []component.Option {
	l.once.Do(func() {
		l.mu.RLock()
		configured := l.configured
		l.mu.RUnlock()
		if configured {
			return
		}

		cfg, err := l.load()
		if err != nil {
			l.logger.Warn("config rejected, using defaults", "error", err)
			cfg = config.Default()
		}
		l.mu.Lock()
		if !l.configured {
			l.opts = cfg.ComponentOptions()
		}
		l.mu.Unlock()
	})

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.opts
}

// Create builds the object for class name. The returned object holds a
// handle to its component until Destroy.
func (l *Library) Create(name entities.UTF16) (obj *abi.Object, err error) {
	factory, ok := l.classes.Lookup(name.String())
	if !ok {
		return nil, fmt.Errorf("class %q is not registered", name)
	}

	defer func() {
		if r := recover(); r != nil {
			obj, err = nil, &sdkerrors.PanicError{Value: r, Entry: "GetClassObject", Stack: debug.Stack()}
		}
	}()

	comp := component.New(factory(), l.options()...)
	obj = l.alloc()
	if obj == nil {
		return nil, &sdkerrors.AllocationError{Size: int(unsafe.Sizeof(abi.Object{}))}
	}
	obj.SetVTables(l.vtables[0], l.vtables[1], l.vtables[2], l.vtables[3])
	obj.Handle = uintptr(cgo.NewHandle(comp))
	return obj, nil
}

// Destroy releases the object and its component handle.
func (l *Library) Destroy(obj *abi.Object) error {
	if obj == nil || obj.Handle == 0 {
		return fmt.Errorf("object is not live")
	}
	cgo.Handle(obj.Handle).Delete()
	obj.Handle = 0
	l.release(obj)
	return nil
}

// ClassNames returns the registered class names joined by the separator.
func (l *Library) ClassNames() entities.UTF16 {
	return entities.NewUTF16(l.classes.ClassNames())
}

// SetPlatformCapabilities records the host's capability level and reports
// the level this library supports.
func (l *Library) SetPlatformCapabilities(capabilities int) int {
	l.mu.Lock()
	l.capabilities = capabilities
	l.mu.Unlock()
	return AppCapabilities3
}

// PlatformCapabilities returns the level passed to SetPlatformCapabilities.
func (l *Library) PlatformCapabilities() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.capabilities
}

// componentOf returns the component bound to a live object.
func componentOf(obj *abi.Object) *component.Component {
	return cgo.Handle(obj.Handle).Value().(*component.Component)
}
