package constants

// Standard Response Field Keys
const (
	ResponseFieldMessage = "message"
	ResponseFieldDetails = "details"
	ResponseFieldError   = "error"
	ResponseFieldData    = "data"
	ResponseFieldTotal   = "total"
)

func BuildErrorResponse(message string, details any) map[string]any {
	response := map[string]any{
		ResponseFieldError: message,
	}

	if details != nil {
		response[ResponseFieldDetails] = details
	}

	return response
}

func BuildSuccessResponse(message string) map[string]any {
	return map[string]any{
		ResponseFieldMessage: message,
	}
}

// BuildListResponse wraps an unpaginated list with its size.
func BuildListResponse(data any, total int) map[string]any {
	return map[string]any{
		ResponseFieldTotal: total,
		ResponseFieldData:  data,
	}
}
