package dto

// Response is the uniform envelope used by every endpoint. Data is always
// an array, even for single-item responses.
type Response struct {
	Code    int    `json:"code"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// ErrorItem is the single data element carried by error responses.
type ErrorItem struct {
	Error string `json:"error"`
}

// NewSuccessResponse wraps the given items in a success envelope.
func NewSuccessResponse(code int, items ...any) Response {
	if items == nil {
		items = []any{}
	}
	return Response{
		Code:    code,
		Data:    items,
		Message: "success",
	}
}

// NewListResponse wraps an already-built slice in a success envelope.
func NewListResponse[T any](code int, items []T) Response {
	if items == nil {
		items = []T{}
	}
	return Response{
		Code:    code,
		Data:    items,
		Message: "success",
	}
}

// NewErrorResponse builds an error envelope with a single error item.
func NewErrorResponse(code int, message string) Response {
	return Response{
		Code:    code,
		Data:    []ErrorItem{{Error: message}},
		Message: "error",
	}
}
