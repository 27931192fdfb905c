package concierge

import (
	"testing"
	"time"
)

func newTestClient(room string) *Client {
	return &Client{
		Send:   make(chan []byte, 4),
		Room:   room,
		UserID: "u1",
	}
}

func TestHubBroadcastToRoom(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	c1 := newTestClient("concierge:u1")
	c2 := newTestClient("concierge:u2")
	hub.register <- c1
	hub.register <- c2

	hub.broadcast <- broadcastMsg{Room: "concierge:u1", Data: []byte("hello")}

	select {
	case msg := <-c1.Send:
		if string(msg) != "hello" {
			t.Fatalf("got %q, want %q", msg, "hello")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
	}

	select {
	case msg := <-c2.Send:
		t.Fatalf("message leaked across rooms: %q", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	c := newTestClient("concierge:u1")
	hub.register <- c
	hub.unregister <- c

	select {
	case _, ok := <-c.Send:
		if ok {
			t.Fatal("expected Send to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for Send to close")
	}

	// broadcasts after unregister must not panic or deliver
	hub.broadcast <- broadcastMsg{Room: "concierge:u1", Data: []byte("late")}
	time.Sleep(50 * time.Millisecond)
}

func TestHubDroppedClientUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	c := &Client{Send: make(chan []byte), Room: "concierge:u1"} // unbuffered, never read
	hub.register <- c

	// the drop path closes Send and removes the client from the room
	hub.broadcast <- broadcastMsg{Room: "concierge:u1", Data: []byte("one")}

	// the disconnect path still fires a normal unregister afterwards;
	// the hub must survive it
	hub.unregister <- c

	c2 := newTestClient("concierge:u1")
	hub.register <- c2
	hub.broadcast <- broadcastMsg{Room: "concierge:u1", Data: []byte("two")}

	select {
	case msg := <-c2.Send:
		if string(msg) != "two" {
			t.Fatalf("got %q, want %q", msg, "two")
		}
	case <-time.After(time.Second):
		t.Fatal("hub stopped serving after dropped-client unregister")
	}
}

func TestHubStopClosesClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	c := newTestClient("concierge:u1")
	hub.register <- c
	hub.Stop()

	select {
	case _, ok := <-c.Send:
		if ok {
			t.Fatal("expected Send to be closed on shutdown")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for shutdown to close Send")
	}

	// a disconnect racing the shutdown must not block forever
	released := make(chan struct{})
	go func() {
		select {
		case hub.unregister <- c:
		case <-hub.done:
		}
		close(released)
	}()

	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("unregister blocked after shutdown")
	}
}

func TestHubSlowClientDropped(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	c := &Client{Send: make(chan []byte), Room: "concierge:u1"} // unbuffered, never read
	hub.register <- c

	hub.broadcast <- broadcastMsg{Room: "concierge:u1", Data: []byte("one")}
	hub.broadcast <- broadcastMsg{Room: "concierge:u1", Data: []byte("two")}

	select {
	case _, ok := <-c.Send:
		if ok {
			t.Fatal("expected slow client's Send to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for slow client drop")
	}
}
