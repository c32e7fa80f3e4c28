package domain

import "strings"

// RoomName is a normalized room key.
type RoomName string

// Normalize trims surrounding whitespace and case-folds s. Both usernames and
// room names go through it; applying it twice is a no-op.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NewRoomName normalizes raw into a room key.
func NewRoomName(raw string) RoomName {
	return RoomName(Normalize(raw))
}
