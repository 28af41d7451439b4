package native

import (
	"errors"
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/addin-sdk/go/application/addin"
	"github.com/reglet-dev/addin-sdk/go/application/component"
	"github.com/reglet-dev/addin-sdk/go/application/registry"
	"github.com/reglet-dev/addin-sdk/go/config"
	"github.com/reglet-dev/addin-sdk/go/domain/entities"
	sdkerrors "github.com/reglet-dev/addin-sdk/go/domain/errors"
	"github.com/reglet-dev/addin-sdk/go/domain/ports"
	"github.com/reglet-dev/addin-sdk/go/internal/abi"
	"github.com/reglet-dev/addin-sdk/go/internal/testutil"
)

type greeter struct {
	addin.Component `name:"Greeter"`

	Name string `prop:"Name" alias:"Имя"`

	HelloOp addin.Method `name:"Hello" alias:"Привет"`

	locale string
	lang   string
}

func (g *greeter) Hello(greeting string) string { return greeting + ", " + g.Name }

func (g *greeter) SetLocale(loc string) { g.locale = loc }
func (g *greeter) SetUserInterfaceLanguageCode(lang string) { g.lang = lang }

var tables [4]byte

func newTestLibrary(t *testing.T, opts ...LibraryOption) *Library {
	t.Helper()
	classes := registry.NewRegistry()
	classes.MustRegister("Greeter", addin.Factory(func() *greeter { return &greeter{Name: "world"} }))
	classes.MustRegister("Broken", func() ports.AddIn { panic("factory failed") })

	opts = append([]LibraryOption{
		WithVTables(unsafe.Pointer(&tables[0]), unsafe.Pointer(&tables[1]), unsafe.Pointer(&tables[2]), unsafe.Pointer(&tables[3])),
	}, opts...)
	return NewLibrary(classes, opts...)
}

// newObject creates a Greeter object whose component already holds a fake
// host memory manager.
func newObject(t *testing.T, lib *Library) (*abi.Object, *testutil.Memory) {
	t.Helper()
	obj, err := lib.Create(entities.NewUTF16("Greeter"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = lib.Destroy(obj) })

	mem := testutil.NewMemory()
	t.Cleanup(mem.FreeAll)
	require.True(t, componentOf(obj).SetMemoryManager(mem))
	return obj, mem
}

func TestLibrary_Create(t *testing.T) {
	lib := newTestLibrary(t)
	obj, _ := newObject(t, lib)

	assert.Equal(t, unsafe.Pointer(&tables[0]), obj.VTable(abi.OffsetInitDone))
	assert.Equal(t, unsafe.Pointer(&tables[1]), obj.VTable(abi.OffsetLangExtender))
	assert.Equal(t, unsafe.Pointer(&tables[2]), obj.VTable(abi.OffsetLocale))
	assert.Equal(t, unsafe.Pointer(&tables[3]), obj.VTable(abi.OffsetUserLanguage))
	assert.NotZero(t, obj.Handle)
	assert.Equal(t, component.DefaultInfo, componentOf(obj).Info())
}

func TestLibrary_CreateFailures(t *testing.T) {
	lib := newTestLibrary(t)

	_, err := lib.Create(entities.NewUTF16("greeter"))
	assert.ErrorContains(t, err, `class "greeter" is not registered`)

	_, err = lib.Create(entities.NewUTF16("Broken"))
	var panicErr *sdkerrors.PanicError
	require.ErrorAs(t, err, &panicErr)
	assert.Equal(t, "GetClassObject", panicErr.Entry)

	lib = newTestLibrary(t, WithObjectMemory(func() *abi.Object { return nil }, func(*abi.Object) {}))
	_, err = lib.Create(entities.NewUTF16("Greeter"))
	var allocErr *sdkerrors.AllocationError
	assert.ErrorAs(t, err, &allocErr)
}

func TestLibrary_Destroy(t *testing.T) {
	var released []*abi.Object
	lib := newTestLibrary(t, WithObjectMemory(
		func() *abi.Object { return new(abi.Object) },
		func(obj *abi.Object) { released = append(released, obj) },
	))

	obj, err := lib.Create(entities.NewUTF16("Greeter"))
	require.NoError(t, err)

	require.NoError(t, lib.Destroy(obj))
	assert.Equal(t, []*abi.Object{obj}, released)
	assert.Zero(t, obj.Handle)

	assert.Error(t, lib.Destroy(obj), "second destroy is rejected")
	assert.Error(t, lib.Destroy(nil))
}

func TestLibrary_ClassNamesAndCapabilities(t *testing.T) {
	lib := newTestLibrary(t)

	assert.Equal(t, "Greeter|Broken", lib.ClassNames().String())
	assert.Equal(t, AppCapabilities3, lib.SetPlatformCapabilities(2))
	assert.Equal(t, 2, lib.PlatformCapabilities())
}

func TestLibrary_ConfigLoadedOnce(t *testing.T) {
	loads := 0
	lib := newTestLibrary(t, WithConfigLoader(func() (config.Config, error) {
		loads++
		cfg := config.Default()
		cfg.Component.Info = 2222
		return cfg, nil
	}))

	a, _ := newObject(t, lib)
	b, _ := newObject(t, lib)

	assert.Equal(t, 1, loads)
	assert.Equal(t, 2222, componentOf(a).Info())
	assert.Equal(t, 2222, componentOf(b).Info())
}

func TestLibrary_ConfigErrorFallsBackToDefaults(t *testing.T) {
	lib := newTestLibrary(t, WithConfigLoader(func() (config.Config, error) {
		return config.Config{}, errors.New("bad file")
	}))

	obj, _ := newObject(t, lib)
	assert.Equal(t, component.DefaultInfo, componentOf(obj).Info())
}

func TestLibrary_ConfigureOverridesLoader(t *testing.T) {
	loaded := false
	lib := newTestLibrary(t, WithConfigLoader(func() (config.Config, error) {
		loaded = true
		return config.Default(), nil
	}))
	lib.Configure(component.WithInfo(3000))

	obj, _ := newObject(t, lib)
	assert.False(t, loaded)
	assert.Equal(t, 3000, componentOf(obj).Info())
}

func TestExports_InitDone(t *testing.T) {
	obj, mem := newObject(t, newTestLibrary(t))
	self := obj.SubObject(abi.OffsetInitDone)

	assert.EqualValues(t, component.DefaultInfo, goGetInfo(self))
	assert.False(t, bool(goInit(self, nil)), "host must pass a connection")
	assert.Nil(t, componentOf(obj).Connection())
	assert.False(t, bool(goSetMemManager(self, nil)))
	assert.Same(t, mem, componentOf(obj).Memory(), "a rejected memory manager keeps the previous one")

	goDone(self)
	assert.Nil(t, componentOf(obj).Connection())
}

func TestExports_LanguageExtender(t *testing.T) {
	obj, mem := newObject(t, newTestLibrary(t))
	self := obj.SubObject(abi.OffsetLangExtender)

	var ext unsafe.Pointer
	require.True(t, bool(goRegisterExtensionAs(self, &ext)))
	assert.Equal(t, "Greeter", testutil.CString(t, ext))
	assert.True(t, mem.Owns(ext))

	assert.EqualValues(t, 1, goGetNProps(self))
	name, keep := testutil.CStringPtr("Имя")
	assert.EqualValues(t, 0, goFindProp(self, name))
	runtime.KeepAlive(keep)
	assert.Equal(t, "Имя", testutil.CString(t, goGetPropName(self, 0, 1)))
	assert.Nil(t, goGetPropName(self, 5, 0))

	var val abi.Variant
	require.True(t, bool(goGetPropVal(self, 0, unsafe.Pointer(&val))))
	testutil.AssertValueEqual(t, entities.StringValue("world"), val.Value())
	require.NoError(t, val.SetValue(mem, entities.StringValue("Go")))
	require.True(t, bool(goSetPropVal(self, 0, unsafe.Pointer(&val))))
	assert.True(t, bool(goIsPropReadable(self, 0)))
	assert.True(t, bool(goIsPropWritable(self, 0)))

	assert.EqualValues(t, 1, goGetNMethods(self))
	method, keep := testutil.CStringPtr("Привет")
	assert.EqualValues(t, 0, goFindMethod(self, method))
	runtime.KeepAlive(keep)
	assert.Equal(t, "Hello", testutil.CString(t, goGetMethodName(self, 0, 0)))
	assert.EqualValues(t, 1, goGetNParams(self, 0))
	assert.True(t, bool(goHasRetVal(self, 0)))
	assert.False(t, bool(goGetParamDefValue(self, 0, 0, unsafe.Pointer(&val))))

	args := make([]abi.Variant, 1)
	require.NoError(t, args[0].SetValue(mem, entities.StringValue("Hi")))
	var ret abi.Variant
	require.True(t, bool(goCallAsFunc(self, 0, unsafe.Pointer(&ret), unsafe.Pointer(&args[0]), 1)))
	testutil.AssertValueEqual(t, entities.StringValue("Hi, Go"), ret.Value())

	assert.True(t, bool(goCallAsProc(self, 0, unsafe.Pointer(&args[0]), 1)))
	assert.False(t, bool(goCallAsProc(self, 3, nil, 0)))
}

func TestExports_Notifications(t *testing.T) {
	obj, _ := newObject(t, newTestLibrary(t))

	loc, keepLoc := testutil.CStringPtr("ru_RU")
	goSetLocale(obj.SubObject(abi.OffsetLocale), loc)
	lang, keepLang := testutil.CStringPtr("ru")
	goSetUserInterfaceLanguageCode(obj.SubObject(abi.OffsetUserLanguage), lang)
	runtime.KeepAlive(keepLoc)
	runtime.KeepAlive(keepLang)

	g := componentOf(obj).AddIn().(*addin.AddIn).Target().(*greeter)
	assert.Equal(t, "ru_RU", g.locale)
	assert.Equal(t, "ru", g.lang)
}
