package services

import (
	"errors"
	"testing"
)

func TestValidateAttachment(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		maxBytes int64
		wantErr  error
	}{
		{"png accepted", "photo.png", 1024, 5_000_000, nil},
		{"jpg accepted", "photo.jpg", 1024, 5_000_000, nil},
		{"jpeg accepted", "photo.jpeg", 1024, 5_000_000, nil},
		{"pdf rejected", "doc.pdf", 1024, 5_000_000, ErrInvalidFileType},
		{"uppercase suffix rejected", "photo.PNG", 1024, 5_000_000, ErrInvalidFileType},
		{"short filename rejected", "a", 1024, 5_000_000, ErrInvalidFileType},
		{"empty filename rejected", "", 1024, 5_000_000, ErrInvalidFileType},
		{"zero size", "photo.png", 0, 5_000_000, ErrInvalidFileSize},
		{"over limit", "photo.png", 10_000_001, 10_000_000, ErrFileTooLarge},
		{"exactly at limit", "photo.png", 10_000_000, 10_000_000, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAttachment(UploadCandidate{Filename: tt.filename, Size: tt.size}, tt.maxBytes)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAttachment(%q, %d) = %v, want %v", tt.filename, tt.size, err, tt.wantErr)
			}
		})
	}
}
