package model

import "time"

// DocumentScan describes the scanned identity document stored for a student.
type DocumentScan struct {
	StudentID   int64     `json:"studentId"`
	StoragePath string    `json:"storagePath"`
	Filename    string    `json:"filename"`
	Size        int64     `json:"size"`
	ContentType string    `json:"contentType"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// DocumentScanLink is a time-limited download URL for a stored scan.
type DocumentScanLink struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}
