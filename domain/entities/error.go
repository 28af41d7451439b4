package entities

// ErrorDetail classifies a dispatch failure for the log record written when
// an entry collapses it to the host's failure value.
// Types: "allocation", "index", "conversion", "access", "call", "panic",
// "validation", "config", "internal".
type ErrorDetail struct {
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`

	// IsNotFound marks an unknown property, method or parameter index.
	IsNotFound bool `json:"is_not_found,omitempty"`
}

// NewErrorDetail returns a detail of the given type.
func NewErrorDetail(errorType, message string) *ErrorDetail {
	return &ErrorDetail{Type: errorType, Message: message}
}

// WithCode sets the code and returns e.
func (e *ErrorDetail) WithCode(code string) *ErrorDetail {
	e.Code = code
	return e
}

// Error renders "type: message [code]"; the internal type is omitted.
func (e *ErrorDetail) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if e.Type != "" && e.Type != "internal" {
		msg = e.Type + ": " + msg
	}
	if e.Code != "" {
		msg += " [" + e.Code + "]"
	}
	return msg
}
