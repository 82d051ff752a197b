package dto

// Response is the standard API envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
	Summary interface{} `json:"resumo,omitempty"`
}

// Meta carries pagination metadata
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// NewSuccessResponseWithMessage creates a success response carrying a message
func NewSuccessResponseWithMessage(message string, data interface{}) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewSuccessResponseWithMeta creates a success response with pagination meta
func NewSuccessResponseWithMeta(data interface{}, total int64, page, pageSize, totalPages int) Response {
	return Response{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
		},
	}
}

// NewSuccessResponseWithSummary creates a paginated response with an aggregate
// summary computed over the whole filtered set
func NewSuccessResponseWithSummary(data interface{}, total int64, page, pageSize, totalPages int, summary interface{}) Response {
	resp := NewSuccessResponseWithMeta(data, total, page, pageSize, totalPages)
	resp.Summary = summary
	return resp
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}

// IDRequest represents a request with an ID path parameter
type IDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}
