package signal

import (
	"encoding/json"

	"github.com/dkeye/Chat/internal/domain"
	"github.com/rs/zerolog/log"
)

func (ctl *SignalWSController) handleJoin(id domain.ConnID, data json.RawMessage) error {
	var p struct {
		Username string `json:"username"`
		Room     string `json:"room"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad join payload")
		return errBadPayload
	}
	log.Info().Str("module", "signal").Str("conn", string(id)).Str("username", p.Username).Str("room", p.Room).Msg("join")
	return ctl.Orch.Join(id, p.Username, p.Room)
}
