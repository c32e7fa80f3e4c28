package domain

import (
	"fmt"
	"time"
)

// AdminName is the sender of system generated notices.
const AdminName = "Admin"

// DefaultMapsURL is the map service used for location links.
const DefaultMapsURL = "https://google.com/maps"

// Message is a text chat record. CreatedAt is Unix milliseconds.
type Message struct {
	Username  string `json:"username"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}

// LocationMessage carries a map link instead of free text.
type LocationMessage struct {
	Username  string `json:"username"`
	URL       string `json:"url"`
	CreatedAt int64  `json:"createdAt"`
}

func NewTextMessage(sender, body string) Message {
	return Message{Username: sender, Text: body, CreatedAt: time.Now().UnixMilli()}
}

func NewLocationMessage(sender, mapURL string) LocationMessage {
	return LocationMessage{Username: sender, URL: mapURL, CreatedAt: time.Now().UnixMilli()}
}

// MapURL builds a map link pointing at lat,lon.
func MapURL(base, lat, lon string) string {
	if base == "" {
		base = DefaultMapsURL
	}
	return fmt.Sprintf("%s?q=%s,%s", base, lat, lon)
}

func WelcomeText(m Member) string {
	return fmt.Sprintf("%s welcome to the chat room, %s.", m.Username, m.Room)
}

func JoinedText(m Member) string { return m.Username + " joined room." }

func LeftText(m Member) string { return m.Username + " left room!" }
