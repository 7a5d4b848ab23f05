package models

// Envelope is the `{ data, meta }` wrapper the catalog API puts around list
// and detail resources.
type Envelope[T any] struct {
	Data T    `json:"data"`
	Meta Meta `json:"meta"`
}

// OperationResult is the `{ success, message, statusCode, data?, errors? }`
// wrapper the catalog API returns for mutations, and which some read
// endpoints return as well. The console passes these through to the view
// layer mostly unmodified.
type OperationResult[T any] struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	StatusCode int          `json:"statusCode"`
	Data       *T           `json:"data,omitempty"`
	Errors     *ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is the structured error block a failed mutation may carry.
type ErrorDetail struct {
	Status   int              `json:"status"`
	Instance string           `json:"instance"`
	Title    string           `json:"title"`
	Type     string           `json:"type"`
	Errors   []map[string]any `json:"errors"`
}
