package dto

// SuccessResponse acknowledges a request that has no resource to return.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// PingResponse is returned by the health check.
type PingResponse struct {
	Message string `json:"message"`
}
