package http

import (
	"fmt"
	"net/url"
)

// BuildURL joins baseURL and an already escaped path and appends query when
// it is not empty. Escapes in path (e.g. %2F) are preserved.
func BuildURL(baseURL, path string, query url.Values) (string, error) {
	parsedURL, err := url.Parse(baseURL + path)
	if err != nil {
		return "", fmt.Errorf("error parsing URL: %w", err)
	}

	if len(query) > 0 {
		parsedURL.RawQuery = query.Encode()
	}

	return parsedURL.String(), nil
}
