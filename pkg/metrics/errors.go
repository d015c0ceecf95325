package metrics

// Error kinds used as the error_type label of request_errors_total.
const (
	ErrorTypeRequest = "request"
	ErrorTypeStatus  = "status"
	ErrorTypeDecode  = "decode"
)
