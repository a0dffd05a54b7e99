// bus/bus_test.go
package bus

import (
	"context"
	"sort"
	"testing"
	"time"
)

func TestBasicPubSub(t *testing.T) {
	b := NewBus(4)
	conn := b.NewConnection("test")

	sub := conn.Subscribe(Topic{"sensor", "light"})

	conn.Publish(conn.NewMessage(Topic{"sensor", "light"}, "hello", false))

	select {
	case got := <-sub.Channel():
		if got.Payload.(string) != "hello" {
			t.Errorf("expected payload 'hello', got %v", got.Payload)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for message")
	}
}

func TestRetainedMessage(t *testing.T) {
	b := NewBus(2)
	conn := b.NewConnection("test")

	conn.Publish(conn.NewMessage(Topic{"ui", "mode"}, "main", true))

	// Late subscriber still sees the retained value.
	sub := conn.Subscribe(Topic{"ui", "mode"})

	select {
	case got := <-sub.Channel():
		if got.Payload.(string) != "main" {
			t.Errorf("expected retained payload 'main', got %v", got.Payload)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for retained message")
	}
}

func TestRetainedClear(t *testing.T) {
	b := NewBus(4)
	c := b.NewConnection("test")

	c.Publish(c.NewMessage(Topic{"ui", "mode"}, "main", true))
	c.Publish(c.NewMessage(Topic{"sampler", "state"}, "up", true))

	// nil payload clears the retained slot.
	c.Publish(c.NewMessage(Topic{"ui", "mode"}, nil, true))

	s := c.Subscribe(Topic{"#"})
	got := drainPayloads(t, s, 1)
	if got[0] != "up" {
		t.Fatalf("expected only 'up' after clear, got %v", got)
	}
	expectNoMessage(t, s)
}

// -----------------------------------------------------------------------------
// Wildcards
// -----------------------------------------------------------------------------

func TestWildcard_SingleLevel(t *testing.T) {
	b := NewBus(16)
	c := b.NewConnection("test")

	s1 := c.Subscribe(Topic{"sensor", "+", "value"})
	s2 := c.Subscribe(Topic{"sensor", "+", "+"})
	s3 := c.Subscribe(Topic{"sensor", "light", "+"})
	sNo := c.Subscribe(Topic{"sensor", "+", "state"})

	c.Publish(b.NewMessage(Topic{"sensor", "light", "value"}, "m1", false))

	expectOneOf(t, s1, "m1")
	expectOneOf(t, s2, "m1")
	expectOneOf(t, s3, "m1")
	expectNoMessage(t, sNo)

	c.Publish(b.NewMessage(Topic{"sensor", "temp", "raw"}, "m2", false))

	expectOneOf(t, s2, "m2")
	expectNoMessage(t, s1)
	expectNoMessage(t, s3)

	// Level-count mismatch never matches "+".
	c.Publish(b.NewMessage(Topic{"sensor", "value"}, "m3", false))
	expectNoMessage(t, s1)
	expectNoMessage(t, s2)
	expectNoMessage(t, s3)
	expectNoMessage(t, sNo)
}

func TestWildcard_MultiLevel(t *testing.T) {
	b := NewBus(16)
	c := b.NewConnection("test")

	sAHash := c.Subscribe(Topic{"ui", "#"})
	sHash := c.Subscribe(Topic{"#"})
	sABHash := c.Subscribe(Topic{"ui", "mode", "#"})
	sAExact := c.Subscribe(Topic{"ui"})

	c.Publish(b.NewMessage(Topic{"ui"}, "p1", false))
	expectOneOf(t, sAHash, "p1")
	expectOneOf(t, sHash, "p1")
	expectOneOf(t, sAExact, "p1")
	expectNoMessage(t, sABHash)

	c.Publish(b.NewMessage(Topic{"ui", "mode"}, "p2", false))
	expectOneOf(t, sAHash, "p2")
	expectOneOf(t, sHash, "p2")
	expectOneOf(t, sABHash, "p2")
	expectNoMessage(t, sAExact)

	c.Publish(b.NewMessage(Topic{"ui", "mode", "main"}, "p3", false))
	expectOneOf(t, sAHash, "p3")
	expectOneOf(t, sHash, "p3")
	expectOneOf(t, sABHash, "p3")
	expectNoMessage(t, sAExact)
}

func TestWildcard_RetainedDelivery(t *testing.T) {
	b := NewBus(32)
	c := b.NewConnection("test")

	c.Publish(b.NewMessage(Topic{"diag"}, "r0", true))
	c.Publish(b.NewMessage(Topic{"diag", "hb"}, "r1", true))
	c.Publish(b.NewMessage(Topic{"diag", "hb", "ts"}, "r2", true))
	c.Publish(b.NewMessage(Topic{"diag", "mem"}, "r3", true))

	sAll := c.Subscribe(Topic{"diag", "#"})
	assertUnorderedEqual(t, drainPayloads(t, sAll, 4), []string{"r0", "r1", "r2", "r3"})

	sPlusHash := c.Subscribe(Topic{"diag", "+", "#"})
	assertUnorderedEqual(t, drainPayloads(t, sPlusHash, 3), []string{"r1", "r2", "r3"})

	sPlus := c.Subscribe(Topic{"diag", "+"})
	assertUnorderedEqual(t, drainPayloads(t, sPlus, 2), []string{"r1", "r3"})
}

// -----------------------------------------------------------------------------
// Request–Reply
// -----------------------------------------------------------------------------

func TestRequestReply_RequestWait(t *testing.T) {
	b := NewBus(8)
	reqConn := b.NewConnection("requester")
	respConn := b.NewConnection("responder")

	reqTopic := Topic{"store", "count", "get"}
	respSub := respConn.Subscribe(reqTopic)
	defer respConn.Unsubscribe(respSub)

	go func() {
		if msg, ok := <-respSub.Channel(); ok {
			respConn.Reply(msg, 7, false)
		}
	}()

	req := b.NewMessage(reqTopic, nil, false)
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	reply, err := reqConn.RequestWait(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error waiting for reply: %v", err)
	}
	if got, ok := reply.Payload.(int); !ok || got != 7 {
		t.Fatalf("unexpected reply payload: %#v", reply.Payload)
	}
	if len(req.ReplyTo) == 0 {
		t.Fatal("request lacks ReplyTo after RequestWait")
	}
	if !topicsEqual(reply.Topic, req.ReplyTo) {
		t.Fatalf("reply topic %v != request ReplyTo %v", reply.Topic, req.ReplyTo)
	}
}

func TestRequestReply_Timeout(t *testing.T) {
	b := NewBus(8)
	reqConn := b.NewConnection("requester")

	req := b.NewMessage(Topic{"store", "noop"}, nil, false)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := reqConn.RequestWait(ctx, req); err == nil {
		t.Fatal("expected timeout error, got nil")
	}
}

func TestReply_WithoutReplyToIsIgnored(t *testing.T) {
	b := NewBus(4)
	c := b.NewConnection("responder")
	// Must not panic or publish anywhere.
	c.Reply(b.NewMessage(Topic{"store", "count", "get"}, nil, false), "x", false)
}

func TestTopic_InvalidTokenPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for non-comparable token, got none")
		}
	}()
	// []byte is not comparable, so T should panic.
	_ = T([]byte{1, 2, 3})
}

// -----------------------------------------------------------------------------
// helpers
// -----------------------------------------------------------------------------

func topicsEqual(a, b Topic) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func expectOneOf(t *testing.T, sub *Subscription, want string) {
	t.Helper()
	select {
	case got := <-sub.Channel():
		s, ok := got.Payload.(string)
		if !ok || s != want {
			t.Fatalf("unexpected payload: %v (want %q)", got.Payload, want)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatalf("timeout waiting for %q", want)
	}
}

func expectNoMessage(t *testing.T, sub *Subscription) {
	t.Helper()
	select {
	case got := <-sub.Channel():
		t.Fatalf("unexpected message: %#v", got)
	case <-time.After(60 * time.Millisecond):
	}
}

func drainPayloads(t *testing.T, sub *Subscription, n int) []string {
	t.Helper()
	var out []string
	deadline := time.Now().Add(300 * time.Millisecond)
	for len(out) < n && time.Now().Before(deadline) {
		select {
		case m := <-sub.Channel():
			s, ok := m.Payload.(string)
			if !ok {
				t.Fatalf("non-string payload in drain: %#v", m.Payload)
			}
			out = append(out, s)
		case <-time.After(10 * time.Millisecond):
		}
	}
	if len(out) != n {
		t.Fatalf("drainPayloads: expected %d messages, got %d (%v)", n, len(out), out)
	}
	return out
}

func assertUnorderedEqual(t *testing.T, got, want []string) {
	t.Helper()
	sort.Strings(got)
	sort.Strings(want)
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d (%v vs %v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("mismatch at %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
