package faults

// SuccessEnvelope wraps feature data for the caller.
type SuccessEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorBody is the error payload inside an ErrorEnvelope.
type ErrorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// ErrorEnvelope is the uniform failure shape returned to callers.
type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

func OK(data any) SuccessEnvelope {
	return SuccessEnvelope{Success: true, Data: data}
}

// Envelope maps an error to the HTTP status and body emitted for it.
func Envelope(err error, requestID string) (int, ErrorEnvelope) {
	kind := KindOf(err)
	return Status(kind), ErrorEnvelope{
		Success: false,
		Error: ErrorBody{
			Code:      Code(kind),
			Message:   PublicMessage(err),
			RequestID: requestID,
		},
	}
}
