package errors

// Response statuses carried by every envelope.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the single response shape of the HTTP API.
// Data is always an array: [payload] on success, [detail] or [] on error.
type Envelope struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    []any  `json:"data"`
}
