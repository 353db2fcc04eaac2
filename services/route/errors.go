// File: services/route/errors.go
package route

import "fmt"

// RouteError describes a route search failure with a stable machine code.
type RouteError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidStartError() *RouteError {
	return &RouteError{Code: "INVALID_START", Message: "Start coordinates are missing or out of range."}
}

func NewInvalidEndError() *RouteError {
	return &RouteError{Code: "INVALID_END", Message: "End coordinates are missing or out of range."}
}

func NewProviderError(detail string) *RouteError {
	return &RouteError{Code: "ROUTE_PROVIDER_ERROR", Message: fmt.Sprintf("Route provider request failed: %s", detail)}
}
