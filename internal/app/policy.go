package app

import "github.com/dkeye/Chat/internal/domain"

type BackpressureAction int

const (
	NoAction BackpressureAction = iota
	CloseConnection
)

// Policy decides what happens to a recipient whose send failed.
type Policy interface {
	OnBackPressure(room domain.RoomName, member domain.Member, err error) BackpressureAction
}

// SimplePolicy closes slow connections; their read loop then runs the
// regular disconnect flow.
type SimplePolicy struct{}

func (SimplePolicy) OnBackPressure(domain.RoomName, domain.Member, error) BackpressureAction {
	return CloseConnection
}

// TolerantPolicy drops the event for the slow recipient and keeps it connected.
type TolerantPolicy struct{}

func (TolerantPolicy) OnBackPressure(domain.RoomName, domain.Member, error) BackpressureAction {
	return NoAction
}
