package component

import (
	sdkerrors "github.com/reglet-dev/addin-sdk/go/domain/errors"
	"github.com/reglet-dev/addin-sdk/go/domain/ports"
)

// Init stores the host connection and runs the component's own Init when it
// implements ports.Lifecycle.
func (c *Component) Init(conn ports.Connection) bool {
	return guard(c, "Init", false, func() (bool, error) {
		if conn == nil {
			return false, sdkerrors.ErrNoConnection
		}
		c.conn = conn
		if c.host != nil {
			c.host.Attach(conn)
		}
		if lc, ok := c.addin.(ports.Lifecycle); ok {
			if err := lc.Init(conn); err != nil {
				return false, err
			}
		}
		return true, nil
	})
}

// SetMemoryManager stores the host memory manager. Until it is set, every
// entry that hands memory to the host fails.
func (c *Component) SetMemoryManager(mem ports.Allocator) bool {
	if mem == nil {
		return false
	}
	c.mem = mem
	return true
}

// Info returns the component version reported by GetInfo.
func (c *Component) Info() int { return c.info }

// Done runs the component's teardown hook and detaches host logging.
func (c *Component) Done() {
	c.run("Done", func() {
		if lc, ok := c.addin.(ports.Lifecycle); ok {
			lc.Done()
		}
	})
	if c.host != nil {
		c.host.Attach(nil)
	}
	c.conn = nil
}
