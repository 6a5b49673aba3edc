package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/oceanai/internal/chat"
	"github.com/ziadkadry99/oceanai/internal/metrics"
	"github.com/ziadkadry99/oceanai/internal/schedule"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// chatRequest is the incoming WebSocket message format.
type chatRequest struct {
	Type      string `json:"type"`       // "message"
	SessionID string `json:"session_id"` // empty for new sessions
	Content   string `json:"content"`
}

// chatResponse is the outgoing WebSocket message format.
type chatResponse struct {
	Type      string `json:"type"` // "message", "typing", "response" or "error"
	SessionID string `json:"session_id"`
	Role      string `json:"role,omitempty"`
	Content   string `json:"content,omitempty"`
	Time      string `json:"time,omitempty"`
}

// chatConn serializes writes to one websocket and owns the delayed
// frames scheduled for it.
type chatConn struct {
	ws      *websocket.Conn
	writeMu sync.Mutex
	pending schedule.Group
	// live is cancelled when the socket closes.
	live context.Context
	log  *logrus.Entry
}

func (c *chatConn) send(resp chatResponse) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.ws.WriteJSON(resp); err != nil {
		c.log.WithError(err).Debug("websocket write")
	}
}

func (c *chatConn) sendError(sessionID, message string) {
	c.send(chatResponse{
		Type:      "error",
		SessionID: sessionID,
		Content:   message,
	})
}

func (d *Dashboard) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		d.log.WithError(err).Warn("websocket upgrade")
		return
	}
	// Transcript writes outlive the request timeout.
	ctx := context.WithoutCancel(r.Context())
	live, cancel := context.WithCancel(ctx)

	conn := &chatConn{ws: ws, live: live, log: d.log.WithField("remote", r.RemoteAddr)}
	defer ws.Close()
	// Replies still pending when the visitor leaves are dropped.
	defer conn.pending.Stop()
	defer cancel()

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				conn.log.WithError(err).Warn("websocket read")
			}
			return
		}

		var req chatRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			conn.sendError("", "invalid message format")
			continue
		}

		switch req.Type {
		case "message", "":
			d.handleChatMessage(ctx, conn, req)
		default:
			conn.sendError(req.SessionID, "unknown message type: "+req.Type)
		}
	}
}

func (d *Dashboard) handleChatMessage(ctx context.Context, conn *chatConn, req chatRequest) {
	content, ok := chat.Normalize(req.Content)
	if !ok {
		return
	}

	sessionID, err := d.resolveSession(ctx, req.SessionID)
	if err != nil {
		conn.sendError(req.SessionID, "failed to create session: "+err.Error())
		return
	}

	userMsg, err := d.chatStore.AddMessage(ctx, chat.Message{
		SessionID: sessionID,
		Role:      chat.RoleUser,
		Content:   content,
	})
	if err != nil {
		conn.sendError(sessionID, "failed to store message: "+err.Error())
		return
	}
	metrics.ChatMessages.WithLabelValues(chat.RoleUser).Inc()
	conn.send(chatResponse{
		Type:      "message",
		SessionID: sessionID,
		Role:      chat.RoleUser,
		Content:   content,
		Time:      userMsg.Clock(),
	})

	conn.pending.After(d.cfg.TypingDelay, func() {
		conn.send(chatResponse{Type: "typing", SessionID: sessionID, Role: chat.RoleAI})
	})
	conn.pending.After(d.cfg.ReplyDelay, func() {
		reply := d.responder.Answer(conn.live, content)
		if conn.live.Err() != nil {
			return
		}
		aiMsg, err := d.chatStore.AddMessage(ctx, chat.Message{
			SessionID: sessionID,
			Role:      chat.RoleAI,
			Content:   reply,
		})
		if err != nil {
			conn.log.WithError(err).Error("storing reply")
			aiMsg = &chat.Message{CreatedAt: time.Now()}
		}
		metrics.ChatMessages.WithLabelValues(chat.RoleAI).Inc()
		conn.send(chatResponse{
			Type:      "response",
			SessionID: sessionID,
			Role:      chat.RoleAI,
			Content:   reply,
			Time:      aiMsg.Clock(),
		})
	})
}

// resolveSession returns id when it names a stored session and a fresh
// session otherwise.
func (d *Dashboard) resolveSession(ctx context.Context, id string) (string, error) {
	if id != "" {
		ok, err := d.chatStore.SessionExists(ctx, id)
		if err != nil {
			return "", err
		}
		if ok {
			return id, nil
		}
	}
	sess, err := d.chatStore.CreateSession(ctx, "dashboard")
	if err != nil {
		return "", err
	}
	return sess.ID, nil
}
