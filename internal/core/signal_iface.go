package core

// Frame is one encoded event as written to the wire.
type Frame []byte

// SignalConnection abstracts the transport endpoint of one client.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	// TrySend queues f without blocking.
	TrySend(Frame) error
	Close()
}
