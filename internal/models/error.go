package models

// ErrorResponse is the failure body of every API endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human-readable error message
	// example: 게시글을 찾을 수 없습니다
	Message string `json:"message"`

	// Field-scoped validation messages
	Fields map[string]string `json:"fields,omitempty"`
}
