package dto

// SuccessResponse represents a standard success response for write endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}
