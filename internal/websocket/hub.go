package websocket

import (
	"encoding/json"
	"log"

	"github.com/mara/thread-board-website/internal/domain"
)

// FeedEvent is the wire shape pushed to feed subscribers.
type FeedEvent struct {
	Type string         `json:"type"`
	Data *domain.Thread `json:"data"`
}

const EventThreadPosted = "thread.posted"

// Hub fans newly posted threads out to every connected feed client.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer: drop it rather than block the feed
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// PublishThread broadcasts a newly posted top-level thread. Never blocks
// the caller; if the hub is saturated the event is dropped.
func (h *Hub) PublishThread(thread *domain.Thread) {
	data, err := json.Marshal(FeedEvent{Type: EventThreadPosted, Data: thread})
	if err != nil {
		log.Printf("ERROR [websocket.PublishThread] marshal failed: %v", err)
		return
	}
	select {
	case h.broadcast <- data:
	default:
		log.Printf("WARN [websocket.PublishThread] feed backlog full, dropping event")
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}
