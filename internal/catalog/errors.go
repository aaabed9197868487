package catalog

import "fmt"

// FetchError reports that the catalog could not be retrieved. Status is the
// HTTP status code when the server answered, 0 otherwise.
type FetchError struct {
	Source string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		if e.Err != nil {
			return fmt.Sprintf("fetch catalog %s failed with status %d: %v", e.Source, e.Status, e.Err)
		}
		return fmt.Sprintf("fetch catalog %s failed with status %d", e.Source, e.Status)
	}
	return fmt.Sprintf("fetch catalog %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a catalog body that is not a valid games document.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decode catalog %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
