// Package orch routes chat events between connections and rooms.
package orch

import (
	"sort"
	"sync"

	"github.com/dkeye/Chat/internal/app"
	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
	"github.com/rs/zerolog/log"
)

type connState int

const (
	stateUnjoined connState = iota
	stateJoined
)

type session struct {
	conn  core.SignalConnection
	state connState
}

// Orchestrator is the room router. Every operation runs to completion under
// mu, so events are handled one at a time whatever the transport does.
type Orchestrator struct {
	Registry *app.Registry
	Policy   app.Policy
	Filter   core.ProfanityFilter
	MapsURL  string

	mu       sync.Mutex
	sessions map[domain.ConnID]*session
}

func NewOrchestrator(reg *app.Registry, policy app.Policy, filter core.ProfanityFilter, mapsURL string) *Orchestrator {
	return &Orchestrator{
		Registry: reg,
		Policy:   policy,
		Filter:   filter,
		MapsURL:  mapsURL,
		sessions: make(map[domain.ConnID]*session),
	}
}

// Connect attaches the transport endpoint of a fresh connection.
func (o *Orchestrator) Connect(id domain.ConnID, conn core.SignalConnection) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.sessions[id]; ok {
		log.Warn().Str("module", "orch").Str("conn", string(id)).Msg("connection id reused, replacing session")
	}
	o.sessions[id] = &session{conn: conn, state: stateUnjoined}
	log.Debug().Str("module", "orch").Str("conn", string(id)).Msg("connected")
}

// Disconnect closes the session. Leaving the room is announced only when
// the connection had actually joined one.
func (o *Orchestrator) Disconnect(id domain.ConnID) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.sessions, id)

	m, ok := o.Registry.Remove(id)
	if !ok {
		log.Debug().Str("module", "orch").Str("conn", string(id)).Msg("disconnect without membership")
		return
	}
	log.Info().Str("module", "orch").Str("conn", string(id)).Str("username", m.Username).Str("room", string(m.Room)).Msg("left room")

	members := o.Registry.ListByRoom(string(m.Room))
	o.broadcast(m.Room, members, "", core.EventMessage, domain.NewTextMessage(domain.AdminName, domain.LeftText(m)))
	o.broadcast(m.Room, members, "", core.EventRoomData, core.RoomData{Room: m.Room, Users: members})
}

// Rooms lists rooms that currently have members, sorted by name.
func (o *Orchestrator) Rooms() []core.RoomInfo {
	o.mu.Lock()
	defer o.mu.Unlock()
	counts := make(map[domain.RoomName]int)
	for id, s := range o.sessions {
		if s.state != stateJoined {
			continue
		}
		if m, ok := o.Registry.Get(id); ok {
			counts[m.Room]++
		}
	}
	out := make([]core.RoomInfo, 0, len(counts))
	for name, n := range counts {
		out = append(out, core.RoomInfo{Name: name, MemberCount: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (o *Orchestrator) sendTo(id domain.ConnID, room domain.RoomName, event string, payload any) {
	frame, err := core.Encode(event, payload)
	if err != nil {
		log.Error().Err(err).Str("module", "orch").Str("event", event).Msg("encode")
		return
	}
	o.deliver(id, room, frame)
}

// broadcast sends one event to members in order, skipping except. A failing
// recipient never stops delivery to the rest.
func (o *Orchestrator) broadcast(room domain.RoomName, members []domain.Member, except domain.ConnID, event string, payload any) {
	frame, err := core.Encode(event, payload)
	if err != nil {
		log.Error().Err(err).Str("module", "orch").Str("event", event).Msg("encode")
		return
	}
	sent := 0
	for _, m := range members {
		if m.ID == except {
			continue
		}
		if o.deliver(m.ID, room, frame) {
			sent++
		}
	}
	log.Debug().Str("module", "orch").Str("room", string(room)).Str("event", event).Int("sent_to", sent).Msg("broadcast result")
}

func (o *Orchestrator) deliver(id domain.ConnID, room domain.RoomName, frame core.Frame) bool {
	s, ok := o.sessions[id]
	if !ok {
		return false
	}
	err := s.conn.TrySend(frame)
	if err == nil {
		return true
	}
	log.Warn().Err(err).Str("module", "orch").Str("conn", string(id)).Str("room", string(room)).Msg("send failed")
	if o.Policy == nil {
		return false
	}
	m, _ := o.Registry.Get(id)
	switch o.Policy.OnBackPressure(room, m, err) {
	case app.CloseConnection:
		s.conn.Close()
	case app.NoAction:
	}
	return false
}
