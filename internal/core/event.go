// Package core holds the transport-facing contracts shared by the router and adapters.
package core

import (
	"encoding/json"

	"github.com/dkeye/Chat/internal/domain"
)

// Server to client event names.
const (
	EventMessage         = "message"
	EventLocationMessage = "locationMessage"
	EventRoomData        = "roomData"
	EventAck             = "ack"
	EventPong            = "pong"
)

// Client to server event names.
const (
	EventJoin         = "join"
	EventSendMessage  = "sendMessage"
	EventSendLocation = "sendLocation"
	EventPing         = "ping"
)

// Envelope is the JSON frame exchanged in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Ack   *int64          `json:"ack,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

// RoomData is the roster pushed to every member after a join or leave.
type RoomData struct {
	Room  domain.RoomName `json:"room"`
	Users []domain.Member `json:"users"`
}

// Encode wraps payload into an envelope frame.
func Encode(event string, payload any) (Frame, error) {
	env := Envelope{Event: event}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		env.Data = data
	}
	return json.Marshal(env)
}

// EncodeAck builds the single acknowledgement for request id. A nil err means success.
func EncodeAck(id int64, err error) (Frame, error) {
	env := Envelope{Event: EventAck, Ack: &id}
	if err != nil {
		env.Error = err.Error()
	}
	return json.Marshal(env)
}
