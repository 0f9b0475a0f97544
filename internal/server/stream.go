package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/matzehuels/tilegrid/pkg/errors"
	"github.com/matzehuels/tilegrid/pkg/grid"
	"github.com/matzehuels/tilegrid/pkg/pipeline"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// Stream operations. A message without an op is a plain update.
const (
	OpUpdate = "update"
	OpAdd    = "add"
	OpRemove = "remove"
)

// StreamRequest changes the session's options. Nil fields keep their
// current value.
type StreamRequest struct {
	Op       string   `json:"op,omitempty"`
	Width    *float64 `json:"width,omitempty"`
	Height   *float64 `json:"height,omitempty"`
	Count    *int     `json:"count,omitempty"`
	Aspect   *string  `json:"aspect,omitempty"`
	Mode     *string  `json:"mode,omitempty"`
	Fixed    *int     `json:"fixed,omitempty"`
	Order    *string  `json:"order,omitempty"`
	Margin   *float64 `json:"margin,omitempty"`
	Padding  *float64 `json:"padding,omitempty"`
	Centered *bool    `json:"centered,omitempty"`
}

// StreamReply is pushed after the initial connect and after every request.
// Seq counts replies on the connection, starting at 1.
type StreamReply struct {
	Type   string       `json:"type"`
	Seq    int          `json:"seq"`
	Layout *grid.Layout `json:"layout,omitempty"`
	Error  *errorBody   `json:"error,omitempty"`
}

// apply returns opts with req's changes. The input is not modified.
func (req StreamRequest) apply(opts pipeline.Options) (pipeline.Options, error) {
	switch req.Op {
	case "", OpUpdate:
	case OpAdd:
		opts.Count++
	case OpRemove:
		if opts.Count > 0 {
			opts.Count--
		}
	default:
		return opts, errors.New(errors.ErrCodeInvalidInput, "unknown op %q", req.Op)
	}

	if req.Width != nil {
		opts.Width = *req.Width
	}
	if req.Height != nil {
		opts.Height = *req.Height
	}
	if req.Count != nil {
		opts.Count = *req.Count
	}
	if req.Aspect != nil {
		opts.Aspect = *req.Aspect
	}
	if req.Mode != nil {
		opts.Mode = *req.Mode
		opts.Order = ""
	}
	if req.Fixed != nil {
		opts.Fixed = *req.Fixed
	}
	if req.Order != nil {
		opts.Order = *req.Order
	}
	if req.Margin != nil {
		opts.Margin = *req.Margin
	}
	if req.Padding != nil {
		opts.Padding = *req.Padding
	}
	if req.Centered != nil {
		opts.Centered = *req.Centered
	}
	return opts, nil
}

// handleStream keeps one set of options per connection and re-solves on
// every request. A rejected request leaves the previous options in place.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.Logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	send := make(chan StreamReply, sendBuffer)
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.writePump(ctx, conn, send)
	}()

	var opts pipeline.Options
	seq := 0
	reply := func(l grid.Layout, err error) {
		seq++
		out := StreamReply{Type: "layout", Seq: seq}
		if err != nil {
			code := errors.GetCode(err)
			if code == "" {
				code = errors.ErrCodeInternal
			}
			out.Type = "error"
			out.Error = &errorBody{Code: code, Message: errors.UserMessage(err)}
		} else {
			out.Layout = &l
		}
		select {
		case send <- out:
		case <-done:
		}
	}

	reply(s.Runner.Layout(ctx, opts))

	conn.SetReadLimit(maxBodyBytes)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.Logger.Debug("stream closed", "error", err, "request_id", RequestID(r.Context()))
			}
			break
		}

		var req StreamRequest
		if err := json.Unmarshal(data, &req); err != nil {
			reply(grid.Layout{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid message"))
			continue
		}
		next, err := req.apply(opts)
		if err != nil {
			reply(grid.Layout{}, err)
			continue
		}
		l, err := s.Runner.Layout(ctx, next)
		if err == nil {
			opts = next
		}
		reply(l, err)
	}

	cancel()
	<-done
}

func (s *Server) writePump(ctx context.Context, conn *websocket.Conn, send <-chan StreamReply) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg := <-send:
			data, err := json.Marshal(msg)
			if err != nil {
				s.Logger.Error("encode stream reply", "error", err)
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}
