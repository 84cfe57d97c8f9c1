package transport

// Envelope is the wire shape of every response: a status discriminator plus
// either the payload or a coded error message.
type Envelope struct {
	Status string      `json:"status"`
	Code   string      `json:"code,omitempty"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
	Meta   interface{} `json:"meta,omitempty"`
}

// NewSuccess wraps a payload, with optional metadata.
func NewSuccess(data interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "success",
		Data:   data,
		Meta:   meta,
	}
}

// NewError wraps an error code and message. Meta carries diagnostic detail
// when the caller has some, like the per-service breakdown on health checks.
func NewError(code, message string, meta interface{}) Envelope {
	return Envelope{
		Status: "error",
		Code:   code,
		Error:  message,
		Meta:   meta,
	}
}
