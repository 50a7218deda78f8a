// models/notification.go
package models

import "time"

// Notification is an entry in the user's in-app inbox. The server
// stamps ID and DateTime on insert; the rest comes from the client.
type Notification struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	Type     string    `json:"type,omitempty"`
	Read     bool      `json:"read"`
	DateTime time.Time `json:"dateTime"`
}
