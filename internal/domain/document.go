package domain

import "time"

// Document is metadata for an uploaded file. Blob content lives in
// external storage addressed by StorageKey.
type Document struct {
	ID         string
	FileName   string
	MimeType   string
	SizeBytes  int64
	StorageKey string
	UploadedBy string
	CreatedAt  time.Time
}
