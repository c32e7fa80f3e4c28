// Package domain contains entities without transport logic, just meta-data.
package domain

// ConnID identifies one transport connection for its whole lifetime.
type ConnID string

// Member is one connection's registered identity within a room.
// It is created once at join and never mutated afterwards.
type Member struct {
	ID       ConnID   `json:"-"`
	Username string   `json:"username"`
	Room     RoomName `json:"room"`
}

// NewMember normalizes username and room and validates them.
func NewMember(id ConnID, username, room string) (Member, error) {
	m := Member{
		ID:       id,
		Username: Normalize(username),
		Room:     NewRoomName(room),
	}
	if m.Username == "" || m.Room == "" {
		return Member{}, ErrValidation
	}
	return m, nil
}
