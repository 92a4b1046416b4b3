// Package services holds the write-path workflows behind the post routes.
package services

import (
	"errors"
	"io"
	"strings"
)

// Validation and workflow failures surfaced to the controllers.
var (
	ErrInvalidFileType = errors.New("invalid file type")
	ErrInvalidFileSize = errors.New("invalid file size")
	ErrFileTooLarge    = errors.New("file too big")
	ErrStorageWrite    = errors.New("failed to store file")
	ErrPersistence     = errors.New("failed to persist post")
)

// UploadCandidate is an uploaded blob before acceptance: the declared
// filename and size plus a reader over the transient upload.
type UploadCandidate struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

var allowedSuffixes = []string{".jpg", ".jpeg", ".png"}

// ValidateAttachment checks the candidate's declared type and size before
// any side effect happens. Suffix matching is explicit and case-sensitive;
// filenames shorter than any suffix simply fail the type check.
func ValidateAttachment(c UploadCandidate, maxBytes int64) error {
	ok := false
	for _, suffix := range allowedSuffixes {
		if strings.HasSuffix(c.Filename, suffix) {
			ok = true
			break
		}
	}
	if !ok {
		return ErrInvalidFileType
	}

	if c.Size == 0 {
		return ErrInvalidFileSize
	}
	if c.Size > maxBytes {
		return ErrFileTooLarge
	}
	return nil
}
