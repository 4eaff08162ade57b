package sofascore

import "fmt"

// ErrNotFound is returned when the provider has no data for a match.
var ErrNotFound = fmt.Errorf("not found")

// APIError is any non-2xx provider response other than a plain 404.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sofascore api status %d: %s", e.Status, e.Body)
}
