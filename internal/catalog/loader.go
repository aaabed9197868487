package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
)

// Loader fetches and decodes the catalog from one source.
type Loader struct {
	source Source
}

func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

func (l *Loader) Source() string {
	return l.source.String()
}

// Load fetches the document once and decodes it. Failures are returned as
// *FetchError or *ParseError.
func (l *Loader) Load(ctx context.Context) (Catalog, error) {
	data, err := l.source.Fetch(ctx)
	if err != nil {
		var fetchErr *FetchError
		if errors.As(err, &fetchErr) {
			return Catalog{}, err
		}
		return Catalog{}, &FetchError{Source: l.source.String(), Err: err}
	}
	return Decode(l.source.String(), data)
}

// Decode parses a games document. The body must be a JSON object.
func Decode(source string, data []byte) (Catalog, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Catalog{}, &ParseError{Source: source, Err: errors.New("document is not a JSON object")}
	}

	var c Catalog
	if err := json.Unmarshal(trimmed, &c); err != nil {
		return Catalog{}, &ParseError{Source: source, Err: err}
	}
	return c, nil
}
