package orch

import (
	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
	"github.com/rs/zerolog/log"
)

// Join registers the connection under username in room. On failure nothing
// is broadcast and the connection stays unjoined.
func (o *Orchestrator) Join(id domain.ConnID, username, room string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	s, ok := o.sessions[id]
	if !ok {
		return domain.ErrNotConnected
	}
	if s.state == stateJoined {
		log.Info().Str("module", "orch").Str("conn", string(id)).Msg("rejected re-join")
		return domain.ErrAlreadyJoined
	}
	m, err := o.Registry.Add(id, username, room)
	if err != nil {
		log.Info().Err(err).Str("module", "orch").Str("conn", string(id)).Str("username", username).Str("room", room).Msg("join rejected")
		return err
	}
	s.state = stateJoined
	log.Info().Str("module", "orch").Str("conn", string(id)).Str("username", m.Username).Str("room", string(m.Room)).Msg("joined room")

	o.sendTo(id, m.Room, core.EventMessage, domain.NewTextMessage(domain.AdminName, domain.WelcomeText(m)))
	members := o.Registry.ListByRoom(string(m.Room))
	o.broadcast(m.Room, members, id, core.EventMessage, domain.NewTextMessage(domain.AdminName, domain.JoinedText(m)))
	o.broadcast(m.Room, members, "", core.EventRoomData, core.RoomData{Room: m.Room, Users: members})
	return nil
}
