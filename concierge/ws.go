package concierge

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"shubharambh/middleware"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type inboundPayload struct {
	Action  string `json:"action"` // "chat"
	Content string `json:"content,omitempty"`
}

type outboundPayload struct {
	Action    string `json:"action"` // "chat"
	Role      string `json:"role"`   // "user" or "assistant"
	Content   string `json:"content,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// WebSocketHandler upgrades GET /ws/concierge. Each user chats in a private
// room keyed by their user id; the assistant reply is generated inline and
// broadcast back. Token rides the query string because browsers cannot set
// websocket headers.
func WebSocketHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		token := r.URL.Query().Get("token")
		claims, err := middleware.ValidateJWT("Bearer " + token)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		room := "concierge:" + claims.UserID

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}
		client := &Client{
			Conn:   conn,
			Send:   make(chan []byte, 256),
			Room:   room,
			UserID: claims.UserID,
		}
		select {
		case hub.register <- client:
		case <-hub.done:
			conn.Close()
			return
		}

		// greet on connect
		if data, err := json.Marshal(outboundPayload{
			Action:    "chat",
			Role:      "assistant",
			Content:   greeting,
			Timestamp: time.Now().Unix(),
		}); err == nil {
			client.Send <- data
		}

		go writePump(client)
		go readPump(hub, client)
	}
}

func readPump(hub *Hub, c *Client) {
	defer func() {
		select {
		case hub.unregister <- c:
		case <-hub.done:
		}
		c.Conn.Close()
	}()

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			return
		}

		var in inboundPayload
		if err := json.Unmarshal(raw, &in); err != nil || in.Action != "chat" || in.Content == "" {
			continue
		}

		echo, _ := json.Marshal(outboundPayload{
			Action:    "chat",
			Role:      "user",
			Content:   in.Content,
			Timestamp: time.Now().Unix(),
		})
		select {
		case hub.broadcast <- broadcastMsg{Room: c.Room, Data: echo}:
		case <-hub.done:
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		replyText := Reply(ctx, in.Content)
		cancel()

		reply, _ := json.Marshal(outboundPayload{
			Action:    "chat",
			Role:      "assistant",
			Content:   replyText,
			Timestamp: time.Now().Unix(),
		})
		select {
		case hub.broadcast <- broadcastMsg{Room: c.Room, Data: reply}:
		case <-hub.done:
			return
		}
	}
}

func writePump(c *Client) {
	defer c.Conn.Close()
	for data := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}
