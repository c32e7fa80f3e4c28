package signal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dkeye/Chat/internal/domain"
	"github.com/rs/zerolog/log"
)

// Coordinate accepts a JSON number or string; null and absent both read as blank.
type Coordinate string

func (c *Coordinate) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*c = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = Coordinate(s)
	default:
		if _, err := strconv.ParseFloat(string(b), 64); err != nil {
			return fmt.Errorf("coordinate %s: %w", b, err)
		}
		*c = Coordinate(b)
	}
	return nil
}

func (ctl *SignalWSController) handleSendMessage(id domain.ConnID, data json.RawMessage) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad sendMessage payload")
		return errBadPayload
	}
	if !ctl.limiter.Allow(id) {
		return domain.ErrRateLimited
	}
	return ctl.Orch.SendMessage(id, text)
}

func (ctl *SignalWSController) handleSendLocation(id domain.ConnID, data json.RawMessage) error {
	var p struct {
		Latitude  Coordinate `json:"latitude"`
		Longitude Coordinate `json:"longitude"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad sendLocation payload")
		return domain.ErrInvalidLocation
	}
	if !ctl.limiter.Allow(id) {
		return domain.ErrRateLimited
	}
	return ctl.Orch.SendLocation(id, string(p.Latitude), string(p.Longitude))
}
