package state

import (
	"fmt"
	"math/big"
)

// Store is the committed world state. Implementations must apply a write
// batch atomically: either every entry lands or none do.
type Store interface {
	Get(key string) ([]byte, error)
	ApplyBatch(writes map[string][]byte) error
}

// Event is a structured notification emitted by a committed operation.
type Event struct {
	TxID    string `json:"txId"`
	Name    string `json:"name"`
	Payload []byte `json:"payload"`
}

// EventSink receives events after the operation that produced them commits.
type EventSink interface {
	Publish(event Event) error
}

// TransactionContext carries everything a ledger operation may read from its
// execution environment: world state access, the caller identity, the
// transaction timestamp and gas price, and the event sink. All of these are
// captured at entry and stay constant for the whole operation.
type TransactionContext interface {
	GetState(key string) ([]byte, error)
	PutState(key string, value []byte) error
	DelState(key string) error
	SetEvent(name string, payload []byte) error
	GetSender() string
	GetTxTimestamp() uint64
	GetGasPrice() *big.Int
	GetTxID() string
}

// Context is the concrete TransactionContext. Writes and events are buffered
// until Commit; an operation that fails is simply never committed, so none of
// its effects reach the store.
type Context struct {
	store     Store
	sink      EventSink
	writes    map[string][]byte
	order     []string
	events    []Event
	sender    string
	timestamp uint64
	gasPrice  *big.Int
	txID      string
	committed bool
}

type Option func(*Context)

func WithSender(sender string) Option {
	return func(c *Context) { c.sender = sender }
}

func WithTimestamp(ts uint64) Option {
	return func(c *Context) { c.timestamp = ts }
}

func WithGasPrice(price *big.Int) Option {
	return func(c *Context) { c.gasPrice = price }
}

func WithTxID(txID string) Option {
	return func(c *Context) { c.txID = txID }
}

func WithEventSink(sink EventSink) Option {
	return func(c *Context) { c.sink = sink }
}

func NewContext(store Store, opts ...Option) *Context {
	ctx := &Context{
		store:    store,
		writes:   map[string][]byte{},
		gasPrice: big.NewInt(0),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// GetState reads through the buffered write set first so an operation always
// sees its own pending writes.
func (c *Context) GetState(key string) ([]byte, error) {
	if value, ok := c.writes[key]; ok {
		return value, nil
	}
	return c.store.Get(key)
}

func (c *Context) PutState(key string, value []byte) error {
	if c.committed {
		return fmt.Errorf("context already committed")
	}
	if _, ok := c.writes[key]; !ok {
		c.order = append(c.order, key)
	}
	c.writes[key] = value
	return nil
}

// DelState records a deletion in the write set (a nil value).
func (c *Context) DelState(key string) error {
	return c.PutState(key, nil)
}

func (c *Context) SetEvent(name string, payload []byte) error {
	if c.committed {
		return fmt.Errorf("context already committed")
	}
	c.events = append(c.events, Event{TxID: c.txID, Name: name, Payload: payload})
	return nil
}

func (c *Context) GetSender() string {
	return c.sender
}

func (c *Context) GetTxTimestamp() uint64 {
	return c.timestamp
}

func (c *Context) GetGasPrice() *big.Int {
	return c.gasPrice
}

func (c *Context) GetTxID() string {
	return c.txID
}

// Commit applies the buffered write set to the store and then delivers the
// buffered events. Events go out only after the state change is durable.
func (c *Context) Commit() error {
	if c.committed {
		return fmt.Errorf("context already committed")
	}
	if err := c.store.ApplyBatch(c.writes); err != nil {
		return fmt.Errorf("failed to apply write set: %w", err)
	}
	c.committed = true
	if c.sink != nil {
		for _, event := range c.events {
			if err := c.sink.Publish(event); err != nil {
				return fmt.Errorf("failed to publish event %s: %w", event.Name, err)
			}
		}
	}
	return nil
}

// Events returns the buffered events in emission order.
func (c *Context) Events() []Event {
	return c.events
}
