package response

// Envelope is the wire format shared by every API route: reads fill Data,
// writes fill Message (plus Data for created entities), failures fill Error.
type Envelope struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Data wraps a successful read result.
func Data(data interface{}) Envelope {
	return Envelope{Data: data}
}

// Message wraps a successful write with a human-readable confirmation.
func Message(msg string) Envelope {
	return Envelope{Message: msg}
}

// Created wraps a successful insert, echoing the stored entity so callers
// can pick up the generated id.
func Created(msg string, data interface{}) Envelope {
	return Envelope{Message: msg, Data: data}
}

// Error wraps a failure message.
func Error(err string) Envelope {
	return Envelope{Error: err}
}
