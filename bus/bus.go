// bus.go
package bus

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// -----------------------------------------------------------------------------
// Topics
// -----------------------------------------------------------------------------

// Topic is a sequence of comparable tokens (strings, ints, ...).
// In subscriptions, the string token "+" matches exactly one level and
// "#" matches zero or more trailing levels. Published topics must be
// concrete (no wildcard tokens).
type Topic []any

const (
	WildcardOne = "+"
	WildcardAll = "#"
)

// T builds a Topic and panics if a token is not comparable (map-key safe).
func T(tokens ...any) Topic {
	t := make(Topic, len(tokens))
	for i, tok := range tokens {
		func() {
			defer func() {
				if r := recover(); r != nil {
					panic("bus: topic token is not comparable")
				}
			}()
			_ = map[any]struct{}{tok: {}}
		}()
		t[i] = tok
	}
	return t
}

func (t Topic) Len() int     { return len(t) }
func (t Topic) At(i int) any { return t[i] }

// -----------------------------------------------------------------------------
// Message
// -----------------------------------------------------------------------------

type Message struct {
	Topic    Topic
	Payload  any
	Retained bool
	ReplyTo  Topic
}

// -----------------------------------------------------------------------------
// Subscription
// -----------------------------------------------------------------------------

type Subscription struct {
	topic Topic
	ch    chan *Message
	bus   *Bus
	conn  *Connection // owning connection
}

func (s *Subscription) Topic() Topic             { return s.topic }
func (s *Subscription) Channel() <-chan *Message { return s.ch }
func (s *Subscription) Unsubscribe()             { s.conn.Unsubscribe(s) }

// -----------------------------------------------------------------------------
// Trie node
// -----------------------------------------------------------------------------

type node struct {
	children map[any]*node
	subs     []*Subscription
	retained *Message
}

func (n *node) child(tok any) *node {
	if n.children == nil {
		return nil
	}
	return n.children[tok]
}

func (n *node) ensureChild(tok any) *node {
	if n.children == nil {
		n.children = make(map[any]*node)
	}
	c, ok := n.children[tok]
	if !ok {
		c = &node{}
		n.children[tok] = c
	}
	return c
}

// -----------------------------------------------------------------------------
// Bus
// -----------------------------------------------------------------------------

type Bus struct {
	mu      sync.RWMutex
	root    *node
	qLen    int
	replySeq atomic.Uint32
}

// NewBus creates a new bus with the given subscription queue length.
func NewBus(queueLen int) *Bus {
	if queueLen <= 0 {
		queueLen = 8 // safe default
	}
	return &Bus{
		root: &node{},
		qLen: queueLen,
	}
}

// NewMessage builds a message for topic t.
func (b *Bus) NewMessage(t Topic, payload any, retained bool) *Message {
	return &Message{Topic: t, Payload: payload, Retained: retained}
}

// addSubscription inserts a subscription into the trie and delivers any
// retained messages its pattern matches.
func (b *Bus) addSubscription(topic Topic, sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.root
	for _, tok := range topic {
		n = n.ensureChild(tok)
	}
	n.subs = append(n.subs, sub)

	b.deliverRetained(b.root, topic, 0, sub)
}

// deliverRetained walks the trie matching pattern against stored retained
// messages. "#" must be the last pattern token.
func (b *Bus) deliverRetained(n *node, pattern Topic, idx int, sub *Subscription) {
	if n == nil {
		return
	}
	if idx == len(pattern) {
		if n.retained != nil {
			deliver(sub, n.retained)
		}
		return
	}
	switch pattern[idx] {
	case WildcardAll:
		b.retainedSubtree(n, sub)
	case WildcardOne:
		for _, c := range n.children {
			b.deliverRetained(c, pattern, idx+1, sub)
		}
	default:
		b.deliverRetained(n.child(pattern[idx]), pattern, idx+1, sub)
	}
}

func (b *Bus) retainedSubtree(n *node, sub *Subscription) {
	if n.retained != nil {
		deliver(sub, n.retained)
	}
	for _, c := range n.children {
		b.retainedSubtree(c, sub)
	}
}

// Publish delivers a message to all subscriptions whose pattern matches its
// topic, then stores or clears the retained copy.
func (b *Bus) Publish(msg *Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.match(b.root, msg.Topic, 0, msg)

	if msg.Retained {
		n := b.root
		for _, tok := range msg.Topic {
			n = n.ensureChild(tok)
		}
		if msg.Payload == nil {
			n.retained = nil
		} else {
			n.retained = msg
		}
	}
}

// match walks the subscription trie against a concrete topic, branching on
// exact tokens, "+" and "#".
func (b *Bus) match(n *node, topic Topic, idx int, msg *Message) {
	if n == nil {
		return
	}
	// "#" at this level matches the remaining suffix, including empty.
	if hash := n.child(WildcardAll); hash != nil {
		for _, sub := range hash.subs {
			deliver(sub, msg)
		}
	}
	if idx == len(topic) {
		for _, sub := range n.subs {
			deliver(sub, msg)
		}
		return
	}
	b.match(n.child(topic[idx]), topic, idx+1, msg)
	b.match(n.child(WildcardOne), topic, idx+1, msg)
}

func deliver(sub *Subscription, msg *Message) {
	select {
	case sub.ch <- msg:
	default:
		// drop oldest if queue full
		select {
		case <-sub.ch:
		default:
		}
		select {
		case sub.ch <- msg:
		default:
		}
	}
}

// unsubscribe removes a subscription from the trie.
func (b *Bus) unsubscribe(topic Topic, sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.root
	var stack []*node
	for _, tok := range topic {
		child := n.child(tok)
		if child == nil {
			return
		}
		stack = append(stack, n)
		n = child
	}

	for i, s := range n.subs {
		if s == sub {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			break
		}
	}

	// Prune empty nodes.
	for i := len(topic) - 1; i >= 0; i-- {
		parent := stack[i]
		key := topic[i]
		child := parent.children[key]
		if len(child.subs) == 0 && len(child.children) == 0 && child.retained == nil {
			delete(parent.children, key)
		} else {
			break
		}
	}
}

// -----------------------------------------------------------------------------
// Connection
// -----------------------------------------------------------------------------

type Connection struct {
	bus  *Bus
	subs []*Subscription
	mu   sync.Mutex
	id   string // placeholder for future identity/auth
}

// NewConnection creates a new connection bound to this bus.
func (b *Bus) NewConnection(id string) *Connection {
	return &Connection{
		bus: b,
		id:  id,
	}
}

// NewMessage builds a message for topic t.
func (c *Connection) NewMessage(t Topic, payload any, retained bool) *Message {
	return c.bus.NewMessage(t, payload, retained)
}

// Publish sends a message via the bus.
func (c *Connection) Publish(msg *Message) {
	c.bus.Publish(msg)
}

// Subscribe registers a subscription owned by this connection.
func (c *Connection) Subscribe(topic Topic) *Subscription {
	sub := &Subscription{
		topic: topic,
		ch:    make(chan *Message, c.bus.qLen),
		bus:   c.bus,
		conn:  c,
	}
	c.bus.addSubscription(topic, sub)
	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()
	return sub
}

// Unsubscribe removes a subscription owned by this connection.
func (c *Connection) Unsubscribe(sub *Subscription) {
	c.bus.unsubscribe(sub.topic, sub)
	c.mu.Lock()
	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	close(sub.ch)
}

// Disconnect closes all subscriptions and clears them.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()

	for _, sub := range subs {
		c.bus.unsubscribe(sub.topic, sub)
		close(sub.ch)
	}
}

// -----------------------------------------------------------------------------
// Request–Reply
// -----------------------------------------------------------------------------

// Request assigns a unique ReplyTo topic to msg, subscribes to it and
// publishes the request. The caller owns the returned subscription.
func (c *Connection) Request(msg *Message) *Subscription {
	n := c.bus.replySeq.Add(1)
	msg.ReplyTo = Topic{"_reply", c.id, int(n)}
	sub := c.Subscribe(msg.ReplyTo)
	c.Publish(msg)
	return sub
}

// Reply answers a request on its ReplyTo topic. Requests without a ReplyTo
// are ignored.
func (c *Connection) Reply(req *Message, payload any, retained bool) {
	if len(req.ReplyTo) == 0 {
		return
	}
	c.Publish(c.NewMessage(req.ReplyTo, payload, retained))
}

var ErrNoReply = errors.New("bus: no reply")

// RequestWait performs Request and blocks for the first reply or ctx expiry.
func (c *Connection) RequestWait(ctx context.Context, msg *Message) (*Message, error) {
	sub := c.Request(msg)
	defer c.Unsubscribe(sub)
	select {
	case reply, ok := <-sub.ch:
		if !ok {
			return nil, ErrNoReply
		}
		return reply, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
