package ports

import "github.com/reglet-dev/addin-sdk/go/domain/entities"

// MessageCode selects how the host presents a message passed to AddError.
type MessageCode uint16

const (
	MessageNone          MessageCode = 1000
	MessageOrdinary      MessageCode = 1001
	MessageAttention     MessageCode = 1002
	MessageImportant     MessageCode = 1003
	MessageVeryImportant MessageCode = 1004
	MessageInfo          MessageCode = 1005
	MessageFail          MessageCode = 1006
	MessageBoxAttention  MessageCode = 1007
	MessageBoxInfo       MessageCode = 1008
	MessageBoxFail       MessageCode = 1009
)

// Connection is the host callback interface passed to Init.
type Connection interface {
	AddError(code MessageCode, source, description entities.UTF16, scode int32) bool
	ExternalEvent(source, message, data entities.UTF16) bool
	SetEventBufferDepth(depth int) bool
	EventBufferDepth() int
	CleanEventBuffer()
	SetStatusLine(status entities.UTF16) bool
	ResetStatusLine()
}
