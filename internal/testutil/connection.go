package testutil

import (
	"sync"

	"github.com/reglet-dev/addin-sdk/go/domain/entities"
	"github.com/reglet-dev/addin-sdk/go/domain/ports"
)

// Message is one AddError call recorded by Connection.
type Message struct {
	Code        ports.MessageCode
	Source      string
	Description string
	SCode       int32
}

// Event is one ExternalEvent call recorded by Connection.
type Event struct {
	Source  string
	Message string
	Data    string
}

// Connection records host callbacks for assertions.
type Connection struct {
	mu          sync.Mutex
	Messages    []Message
	Events      []Event
	Status      string
	BufferDepth int
	Cleaned     int
}

var _ ports.Connection = (*Connection)(nil)

// NewConnection returns an empty recorder.
func NewConnection() *Connection {
	return &Connection{BufferDepth: 1}
}

func (c *Connection) AddError(code ports.MessageCode, source, description entities.UTF16, scode int32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Messages = append(c.Messages, Message{Code: code, Source: source.String(), Description: description.String(), SCode: scode})
	return true
}

func (c *Connection) ExternalEvent(source, message, data entities.UTF16) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Events = append(c.Events, Event{Source: source.String(), Message: message.String(), Data: data.String()})
	return true
}

func (c *Connection) SetEventBufferDepth(depth int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.BufferDepth = depth
	return true
}

func (c *Connection) EventBufferDepth() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.BufferDepth
}

func (c *Connection) CleanEventBuffer() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Events = nil
	c.Cleaned++
}

func (c *Connection) SetStatusLine(status entities.UTF16) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Status = status.String()
	return true
}

func (c *Connection) ResetStatusLine() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Status = ""
}

// MessageList returns a copy of the recorded messages.
func (c *Connection) MessageList() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.Messages...)
}
