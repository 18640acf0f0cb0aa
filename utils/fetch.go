package utils

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// maxSniffLen is the number of leading bytes used to detect a content type.
const maxSniffLen = 512

// Fetch downloads the resource found at uri into a temporary file.
// The returned file is positioned at its beginning; the caller removes it when done.
func Fetch(uri string) (*os.File, error) {
	res, err := http.Get(uri)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch %s: %w", uri, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to fetch %s: status %s", uri, res.Status)
	}

	tmpfile, err := os.CreateTemp("", "guigrid")
	if err != nil {
		return nil, fmt.Errorf("unable to create temporary file: %w", err)
	}
	if _, err := io.Copy(tmpfile, res.Body); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, fmt.Errorf("unable to copy %s into %s: %w", uri, tmpfile.Name(), err)
	}
	if _, err := tmpfile.Seek(0, io.SeekStart); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, err
	}
	return tmpfile, nil
}

// IsValidUrl tests a string to determine if it is a well-structured http(s) url.
func IsValidUrl(uri string) bool {
	if _, err := url.ParseRequestURI(uri); err != nil {
		return false
	}
	u, err := url.Parse(uri)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// DetectContentType reads the MIME type of a file from its first bytes.
func DetectContentType(fname string) (string, error) {
	file, err := os.Open(fname)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("could not close the opened file: %v", err)
		}
	}()

	buffer := make([]byte, maxSniffLen)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	// Falls back to "application/octet-stream" when nothing else matches.
	return http.DetectContentType(buffer[:n]), nil
}

// IsImage reports whether the file content looks like an image.
func IsImage(fname string) (bool, error) {
	ctype, err := DetectContentType(fname)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(ctype, "image/"), nil
}
