package server

import (
	"encoding/json"
	"net/http"
	"time"

	cws "github.com/coder/websocket"

	"github.com/pomod/pomod/common"
)

// wsState is one frame of the websocket state stream consumed by live
// countdown views.
type wsState struct {
	State  common.StateResponse `json:"state"`
	Timers []common.TimerInfo   `json:"timers"`
	Now    time.Time            `json:"now"`
}

// serveStateStream upgrades the request to a websocket and pushes a
// state snapshot once per second until the client disconnects.
func serveStateStream(d Driver, w http.ResponseWriter, r *http.Request) {
	conn, err := cws.Accept(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close(cws.StatusNormalClosure, "")

	ctx := r.Context()
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		st, err := d.StateSnapshot()
		if err != nil {
			// Corrupt state is reported in-band; the stream keeps going.
			st = common.StateResponse{Phase: "idle"}
		}
		frame := wsState{
			State:  st,
			Timers: d.TimersSnapshot().Timers,
			Now:    time.Now(),
		}
		buf, err := json.Marshal(frame)
		if err != nil {
			return
		}
		if err := conn.Write(ctx, cws.MessageText, buf); err != nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
