package dashboard

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/campusnexus/nexus/internal/app"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// clientMessage is the incoming websocket message format.
type clientMessage struct {
	Type       string `json:"type"`
	SessionID  string `json:"session_id,omitempty"`
	Text       string `json:"text,omitempty"`
	Tab        string `json:"tab,omitempty"`
	Language   string `json:"language,omitempty"`
	DocumentID string `json:"document_id,omitempty"`
	Reason     string `json:"reason,omitempty"`
	PromptID   string `json:"prompt_id,omitempty"`
	Value      string `json:"value,omitempty"`
	OK         bool   `json:"ok,omitempty"`
}

type errorEvent struct {
	Message string `json:"message"`
}

func zapSession(id string) zap.Field { return zap.String("session", id) }

func (d *Dashboard) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		d.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	var sess *session
	defer func() {
		if sess != nil {
			d.detach(sess, conn)
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				d.logger.Warn("websocket read", zap.Error(err))
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			writeDirect(conn, sess, "error", errorEvent{Message: "invalid message format"})
			continue
		}

		if sess == nil || msg.Type == "hello" {
			if sess != nil {
				d.detach(sess, conn)
			}
			s, ok := d.lookup(msg.SessionID)
			if !ok {
				s = d.newSession()
			}
			sess = s
			d.attach(sess, conn)
			if msg.Type == "hello" {
				continue
			}
		}

		d.touch(sess)

		if msg.Type == "prompt_reply" {
			sess.prompter.resolve(msg.PromptID, msg.Value, msg.OK)
			continue
		}

		sess.enqueue(msg)
	}
}

func (d *Dashboard) dispatch(ctx context.Context, s *session, msg clientMessage) {
	switch msg.Type {
	case "send":
		s.coord.SendMessage(ctx, msg.Text)
	case "tab":
		if err := s.coord.SwitchTab(ctx, app.Tab(msg.Tab)); err != nil {
			s.surface.emit("error", errorEvent{Message: err.Error()})
		}
	case "lang":
		s.coord.SetLanguage(msg.Language)
	case "refresh":
		s.coord.Refresh(ctx)
	case "approve":
		_ = s.coord.Approve(ctx, msg.DocumentID)
	case "reject":
		if msg.Reason != "" {
			_ = s.coord.RejectWithReason(ctx, msg.DocumentID, msg.Reason)
		} else {
			_ = s.coord.Reject(ctx, msg.DocumentID)
		}
	case "health":
		s.coord.CheckHealth(ctx)
	default:
		s.surface.emit("error", errorEvent{Message: "unknown message type: " + msg.Type})
	}
}

// writeDirect reports an error before a session exists.
func writeDirect(conn *websocket.Conn, s *session, typ string, data interface{}) {
	if s != nil {
		s.surface.emit(typ, data)
		return
	}
	_ = conn.WriteJSON(event{Type: typ, Data: data})
}
