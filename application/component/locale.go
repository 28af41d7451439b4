package component

import (
	"unsafe"

	"github.com/reglet-dev/addin-sdk/go/internal/abi"
)

// SetLocale forwards the host's locale name to the component.
func (c *Component) SetLocale(loc unsafe.Pointer) {
	c.run("SetLocale", func() {
		c.addin.SetLocale(abi.CStr(loc))
	})
}

// SetUserInterfaceLanguageCode forwards the host's interface language code
// to the component.
func (c *Component) SetUserInterfaceLanguageCode(lang unsafe.Pointer) {
	c.run("SetUserInterfaceLanguageCode", func() {
		c.addin.SetUserInterfaceLanguageCode(abi.CStr(lang))
	})
}
