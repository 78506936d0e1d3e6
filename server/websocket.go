package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/service"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message types sent on /ws.
const (
	TypeGrid     = "grid"
	TypeErase    = "erase"
	TypeComplete = "complete"
)

// Message is one WebSocket frame of the erase-event stream.
type Message struct {
	Type   string        `json:"type"`
	Width  int           `json:"width,omitempty"`
	Height int           `json:"height,omitempty"`
	Scale  float64       `json:"scale,omitempty"`
	Seq    int           `json:"seq,omitempty"`
	Cells  []int         `json:"cells,omitempty"`
	Line   []float64     `json:"line,omitempty"`
	Result *service.View `json:"result,omitempty"`
}

func eraseMessage(ev maze.EraseEvent) Message {
	seg := ev.Segment
	return Message{
		Type:  TypeErase,
		Seq:   ev.Seq,
		Cells: []int{ev.Wall.Cell1, ev.Wall.Cell2},
		Line:  []float64{seg.From.X, seg.From.Y, seg.To.X, seg.To.Y},
	}
}

// handleWebSocket generates a maze and replays its erase events to the
// client, one per delay tick.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r.URL.Query())
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	delay := s.opts.StepDelay
	if v := r.URL.Query().Get("delay"); v != "" {
		if delay, err = time.ParseDuration(v); err != nil || delay < 0 {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("%v: delay=%q", errParam, v))
			return
		}
	}

	res, err := s.service.Generate(r.Context(), req)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.readPump(conn, cancel)

	log := s.log.New("id", res.ID.String(), "seed", res.Seed)
	if err := s.stream(ctx, conn, res, delay); err != nil {
		log.Debug("stream stopped", "err", err)
		return
	}
	log.Info("stream complete", "events", len(res.Maze.Events))
}

// readPump discards client frames and cancels the stream once the
// connection is closed from the other side.
func (s *Server) readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(maxMessageSize)
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func (s *Server) stream(ctx context.Context, conn *websocket.Conn, res *service.Result, delay time.Duration) error {
	geo := res.Maze.Grid.Geometry()
	if err := send(conn, Message{Type: TypeGrid, Width: geo.Width, Height: geo.Height, Scale: geo.Scale}); err != nil {
		return err
	}

	var tick <-chan time.Time
	if delay > 0 {
		ticker := time.NewTicker(delay)
		defer ticker.Stop()
		tick = ticker.C
	}
	for _, ev := range res.Maze.Events {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if err := send(conn, eraseMessage(ev)); err != nil {
			return err
		}
	}

	view := res.View()
	if err := send(conn, Message{Type: TypeComplete, Result: &view}); err != nil {
		return err
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "complete"))
}

func send(conn *websocket.Conn, msg Message) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}
