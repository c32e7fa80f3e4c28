package orch

import (
	"strings"

	"github.com/dkeye/Chat/internal/core"
	"github.com/dkeye/Chat/internal/domain"
)

// SendMessage relays text to the sender's whole room, sender included.
func (o *Orchestrator) SendMessage(id domain.ConnID, text string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.Filter != nil && o.Filter.IsProfane(text) {
		return domain.ErrProfanity
	}
	m, ok := o.Registry.Get(id)
	if !ok {
		return domain.ErrNotJoined
	}
	members := o.Registry.ListByRoom(string(m.Room))
	o.broadcast(m.Room, members, "", core.EventMessage, domain.NewTextMessage(m.Username, text))
	return nil
}

// SendLocation relays a map link for lat,lon to the sender's room.
func (o *Orchestrator) SendLocation(id domain.ConnID, lat, lon string) error {
	lat, lon = strings.TrimSpace(lat), strings.TrimSpace(lon)
	if lat == "" || lon == "" {
		return domain.ErrInvalidLocation
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	m, ok := o.Registry.Get(id)
	if !ok {
		return domain.ErrNotJoined
	}
	members := o.Registry.ListByRoom(string(m.Room))
	url := domain.MapURL(o.MapsURL, lat, lon)
	o.broadcast(m.Room, members, "", core.EventLocationMessage, domain.NewLocationMessage(m.Username, url))
	return nil
}
