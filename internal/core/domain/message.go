package domain

import "time"

// UserRef identifies a message sender.
type UserRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Message is a single entry in an enquiry thread. Immutable once created.
type Message struct {
	ID        int64     `json:"id"`
	Sender    UserRef   `json:"sender"`
	Content   string    `json:"content"`
	EnquiryID int64     `json:"enquiry"`
	Timestamp time.Time `json:"timestamp"`
}
