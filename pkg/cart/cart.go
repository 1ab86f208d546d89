// Package cart is the in-memory aggregation engine for "items the current
// session intends to purchase". It holds an insertion-ordered collection of
// (item, quantity) entries keyed by item identity, derives totals against
// live item prices, and broadcasts a change notification to subscribers after
// every successful mutation.
//
// Cart state is session-scoped and never persisted here; reconciliation with
// a stored cart is the caller's concern.
package cart

import (
	"errors"
	"sync"

	"github.com/shashiranjanraj/bookmart/pkg/collection"
)

// ErrNonPositiveQuantity is returned by Add when the quantity is < 1.
// Callers passing a bad quantity have a bug; the cart refuses to clamp it.
var ErrNonPositiveQuantity = errors.New("cart: quantity must be positive")

// Entry is one cart line: an item reference and a positive quantity.
// Price is always read live from the item, never snapshotted.
type Entry[T any] struct {
	Item     T
	Quantity int
}

// Cart is a mutable, observable collection of entries, generic over the
// catalogue item type. Construct with New, providing accessors for the item's
// identity and current price.
//
// All operations are safe for concurrent use. Mutations and their
// notification dispatch are serialized: subscribers always observe
// "state changed, then notified" as one atomic step. Subscriber callbacks may
// read the cart (List, Total, …) but must not mutate it.
type Cart[T any] struct {
	keyOf   func(T) uint
	priceOf func(T) float64

	// opMu serializes each mutate+notify pair; stateMu alone guards the
	// entries so subscribers can re-read state from inside a callback.
	opMu    sync.Mutex
	stateMu sync.RWMutex
	entries []Entry[T]

	subMu   sync.Mutex
	subs    []subscriber
	nextSub int
}

type subscriber struct {
	id int
	fn func()
}

// New creates an empty cart. keyOf must return a stable identity for an item;
// priceOf returns its current unit price.
func New[T any](keyOf func(T) uint, priceOf func(T) float64) *Cart[T] {
	return &Cart[T]{keyOf: keyOf, priceOf: priceOf}
}

// Subscribe registers fn to be invoked, in registration order, exactly once
// after every successful mutation. The callback receives no arguments;
// re-read current state via List/Total. The returned cancel func unregisters.
func (c *Cart[T]) Subscribe(fn func()) (cancel func()) {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	c.nextSub++
	id := c.nextSub
	c.subs = append(c.subs, subscriber{id: id, fn: fn})

	return func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		c.subs = collection.Filter(c.subs, func(s subscriber) bool { return s.id != id })
	}
}

// Add inserts a new entry with the given quantity, or increments the existing
// entry for the same item. Quantity must be >= 1; no upper bound is enforced
// here (stock limits are the caller's concern).
func (c *Cart[T]) Add(item T, quantity int) error {
	if quantity < 1 {
		return ErrNonPositiveQuantity
	}

	c.mutate(func() bool {
		if i := c.indexOf(c.keyOf(item)); i >= 0 {
			c.entries[i].Quantity += quantity
			return true
		}
		c.entries = append(c.entries, Entry[T]{Item: item, Quantity: quantity})
		return true
	})
	return nil
}

// Remove deletes the entry for itemID. Absent id is a no-op and emits no
// notification.
func (c *Cart[T]) Remove(itemID uint) {
	c.mutate(func() bool {
		return c.removeLocked(itemID)
	})
}

// SetQuantity sets the entry's quantity directly. A quantity <= 0 behaves as
// Remove. When no entry exists nothing happens; SetQuantity never creates one.
func (c *Cart[T]) SetQuantity(itemID uint, quantity int) {
	c.mutate(func() bool {
		i := c.indexOf(itemID)
		if i < 0 {
			return false
		}
		if quantity <= 0 {
			return c.removeLocked(itemID)
		}
		c.entries[i].Quantity = quantity
		return true
	})
}

// Increment raises the entry's quantity by one. No-op when absent.
func (c *Cart[T]) Increment(itemID uint) {
	c.mutate(func() bool {
		i := c.indexOf(itemID)
		if i < 0 {
			return false
		}
		c.entries[i].Quantity++
		return true
	})
}

// Decrement lowers the entry's quantity by one; at quantity 1 the entry is
// removed instead of dropping to 0. No-op when absent.
func (c *Cart[T]) Decrement(itemID uint) {
	c.mutate(func() bool {
		i := c.indexOf(itemID)
		if i < 0 {
			return false
		}
		if c.entries[i].Quantity <= 1 {
			return c.removeLocked(itemID)
		}
		c.entries[i].Quantity--
		return true
	})
}

// Clear empties the cart unconditionally and always notifies, even when the
// cart was already empty.
func (c *Cart[T]) Clear() {
	c.mutate(func() bool {
		c.entries = nil
		return true
	})
}

// List returns a snapshot of all entries in insertion order. Mutating the
// returned slice does not affect the cart.
func (c *Cart[T]) List() []Entry[T] {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return append([]Entry[T](nil), c.entries...)
}

// Count is the sum of all quantities, not the number of distinct entries.
func (c *Cart[T]) Count() int {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return collection.Reduce(c.entries, 0, func(acc int, e Entry[T]) int {
		return acc + e.Quantity
	})
}

// Total is the sum of quantity × current item price over all entries,
// computed at call time.
func (c *Cart[T]) Total() float64 {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return collection.Reduce(c.entries, 0.0, func(acc float64, e Entry[T]) float64 {
		return acc + float64(e.Quantity)*c.priceOf(e.Item)
	})
}

// Contains reports whether an entry for itemID exists.
func (c *Cart[T]) Contains(itemID uint) bool {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.indexOf(itemID) >= 0
}

// QuantityOf returns the entry's quantity, or 0 when absent.
func (c *Cart[T]) QuantityOf(itemID uint) int {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	if i := c.indexOf(itemID); i >= 0 {
		return c.entries[i].Quantity
	}
	return 0
}

// mutate runs fn under the state lock and, when fn reports a change,
// dispatches notifications before releasing the operation lock.
func (c *Cart[T]) mutate(fn func() bool) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.stateMu.Lock()
	changed := fn()
	c.stateMu.Unlock()

	if changed {
		c.notify()
	}
}

// notify invokes the subscriber callbacks in registration order. The handler
// slice is copied under the lock so callbacks may unsubscribe themselves.
func (c *Cart[T]) notify() {
	c.subMu.Lock()
	subs := make([]subscriber, len(c.subs))
	copy(subs, c.subs)
	c.subMu.Unlock()

	for _, s := range subs {
		s.fn()
	}
}

// indexOf returns the position of itemID's entry, or -1. Callers hold stateMu.
func (c *Cart[T]) indexOf(itemID uint) int {
	for i, e := range c.entries {
		if c.keyOf(e.Item) == itemID {
			return i
		}
	}
	return -1
}

// removeLocked deletes itemID's entry preserving order; reports whether an
// entry was removed. Callers hold stateMu.
func (c *Cart[T]) removeLocked(itemID uint) bool {
	i := c.indexOf(itemID)
	if i < 0 {
		return false
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	return true
}
