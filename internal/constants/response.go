package constants

// Standard Response Field Keys
const (
	ResponseFieldSuccess = "success"
	ResponseFieldMessage = "message"
	ResponseFieldError   = "error"
	ResponseFieldCode    = "code"
	ResponseFieldCount   = "count"
	ResponseFieldData    = "data"
)

// Response Format Functions.
// Every endpoint answers with an envelope carrying at least `success` plus a
// payload field or an error/message string.

func BuildErrorResponse(errMsg string, detail any) map[string]any {
	response := map[string]any{
		ResponseFieldSuccess: false,
		ResponseFieldError:   errMsg,
	}

	if detail != nil {
		response[ResponseFieldMessage] = detail
	}

	return response
}

func BuildAuthErrorResponse(errMsg, code string) map[string]any {
	return map[string]any{
		ResponseFieldSuccess: false,
		ResponseFieldError:   errMsg,
		ResponseFieldCode:    code,
	}
}

func BuildSuccessResponse(message string) map[string]any {
	return map[string]any{
		ResponseFieldSuccess: true,
		ResponseFieldMessage: message,
	}
}
