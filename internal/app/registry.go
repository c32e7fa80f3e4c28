package app

import (
	"sync"

	"github.com/dkeye/Chat/internal/domain"
	"github.com/rs/zerolog/log"
)

type nameKey struct {
	room     domain.RoomName
	username string
}

// Registry is the in-memory presence store: one Member per connection,
// usernames unique within a room.
type Registry struct {
	mu      sync.Mutex
	order   []domain.ConnID
	members map[domain.ConnID]domain.Member
	names   map[nameKey]domain.ConnID
}

func NewRegistry() *Registry {
	return &Registry{
		members: make(map[domain.ConnID]domain.Member),
		names:   make(map[nameKey]domain.ConnID),
	}
}

// Add validates and inserts a new Member. The uniqueness check and the
// insertion happen under one lock.
func (r *Registry) Add(id domain.ConnID, username, room string) (domain.Member, error) {
	m, err := domain.NewMember(id, username, room)
	if err != nil {
		return domain.Member{}, err
	}
	key := nameKey{room: m.Room, username: m.Username}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, bound := r.members[id]; bound {
		return domain.Member{}, domain.ErrAlreadyJoined
	}
	if _, taken := r.names[key]; taken {
		return domain.Member{}, domain.ErrDuplicateName
	}
	r.members[id] = m
	r.names[key] = id
	r.order = append(r.order, id)
	log.Info().Str("module", "app.registry").Str("conn", string(id)).Str("username", m.Username).Str("room", string(m.Room)).Msg("member added")
	return m, nil
}

// Remove deletes the Member bound to id. It reports false when there was none.
func (r *Registry) Remove(id domain.ConnID) (domain.Member, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.members[id]
	if !ok {
		return domain.Member{}, false
	}
	delete(r.members, id)
	delete(r.names, nameKey{room: m.Room, username: m.Username})
	for i, cid := range r.order {
		if cid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	log.Info().Str("module", "app.registry").Str("conn", string(id)).Str("room", string(m.Room)).Msg("member removed")
	return m, true
}

func (r *Registry) Get(id domain.ConnID) (domain.Member, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.members[id]
	return m, ok
}

// ListByRoom returns the members of room in join order.
func (r *Registry) ListByRoom(room string) []domain.Member {
	name := domain.NewRoomName(room)
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Member, 0)
	for _, id := range r.order {
		if m := r.members[id]; m.Room == name {
			out = append(out, m)
		}
	}
	return out
}
