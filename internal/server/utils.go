package server

import (
	"net/url"
	"path/filepath"
)

// uriToPath extracts the filesystem path from a file:// URI, for handing
// to the config resolver. Non-file URIs pass through unchanged.
func uriToPath(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Scheme != "file" {
		return uri
	}
	return filepath.FromSlash(parsed.Path)
}
