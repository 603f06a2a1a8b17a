package documents

import "time"

// Document is an uploaded resume held in memory for one request.
type Document struct {
	ID         string
	FileName   string
	Extension  string
	SizeBytes  int64
	Text       string
	ReceivedAt time.Time
}
