package core

import "github.com/dkeye/Chat/internal/domain"

// RoomInfo is a read-only summary for APIs.
type RoomInfo struct {
	Name        domain.RoomName `json:"name"`
	MemberCount int             `json:"member_count"`
}
