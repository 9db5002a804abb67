package dto

// ResponseWrapper is the envelope every endpoint answers with. Null fields
// are omitted from the JSON output.
type ResponseWrapper struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK builds a success envelope with a payload
func OK(message string, code int, data any) ResponseWrapper {
	return ResponseWrapper{
		Success: true,
		Message: message,
		Code:    code,
		Data:    data,
	}
}

// OKMessage builds a success envelope without a payload
func OKMessage(message string, code int) ResponseWrapper {
	return ResponseWrapper{
		Success: true,
		Message: message,
		Code:    code,
	}
}

// Failure builds an error envelope
func Failure(message string, code int) ResponseWrapper {
	return ResponseWrapper{
		Success: false,
		Message: message,
		Code:    code,
	}
}
