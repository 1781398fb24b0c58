// Package response contains the helper types for the JSON answers of
// the enroll endpoints, which the catalog pages call from their page
// script.
package response

// Response is the standard JSON envelope. Status is "OK" or "Error";
// Error carries the user-facing message on failure; Data carries the
// payload on success.
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

// OKWithData returns a successful Response carrying data.
func OKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// Error returns a Response carrying the given message.
func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}
