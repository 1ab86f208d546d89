package cart_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bookmart/pkg/cart"
)

type book struct {
	id    uint
	price float64
}

func newCart() *cart.Cart[*book] {
	return cart.New(
		func(b *book) uint { return b.id },
		func(b *book) float64 { return b.price },
	)
}

// countNotifications registers an observer that counts invocations.
func countNotifications(c *cart.Cart[*book]) *int {
	n := new(int)
	c.Subscribe(func() { *n++ })
	return n
}

func TestAddUpsertsExistingEntry(t *testing.T) {
	c := newCart()
	b := &book{id: 1, price: 12.5}

	require.NoError(t, c.Add(b, 2))
	require.NoError(t, c.Add(b, 3))

	entries := c.List()
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Quantity)
	assert.Equal(t, 5, c.Count())
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	c := newCart()
	n := countNotifications(c)

	assert.ErrorIs(t, c.Add(&book{id: 1, price: 1}, 0), cart.ErrNonPositiveQuantity)
	assert.ErrorIs(t, c.Add(&book{id: 1, price: 1}, -4), cart.ErrNonPositiveQuantity)

	assert.Empty(t, c.List())
	assert.Zero(t, *n, "failed adds must not notify")
}

func TestDecrementRemovesAtFloor(t *testing.T) {
	c := newCart()
	require.NoError(t, c.Add(&book{id: 7, price: 2}, 3))

	c.Decrement(7)
	c.Decrement(7)
	assert.Equal(t, 1, c.QuantityOf(7))

	c.Decrement(7)
	assert.False(t, c.Contains(7), "decrement at quantity 1 removes the entry")

	n := countNotifications(c)
	c.Decrement(7)
	assert.Zero(t, *n, "decrement on an absent id is silent")
}

func TestSetQuantity(t *testing.T) {
	c := newCart()
	require.NoError(t, c.Add(&book{id: 3, price: 2}, 2))

	c.SetQuantity(3, 9)
	assert.Equal(t, 9, c.QuantityOf(3))

	c.SetQuantity(3, 0)
	assert.False(t, c.Contains(3), "quantity <= 0 behaves as remove")

	n := countNotifications(c)
	c.SetQuantity(42, 5)
	assert.False(t, c.Contains(42), "setQuantity never creates an entry")
	assert.Zero(t, *n)
}

func TestIncrementAbsentIsNoOp(t *testing.T) {
	c := newCart()
	n := countNotifications(c)

	c.Increment(9)

	assert.Empty(t, c.List())
	assert.Zero(t, *n)
}

func TestRemove(t *testing.T) {
	c := newCart()
	require.NoError(t, c.Add(&book{id: 1, price: 1}, 1))
	require.NoError(t, c.Add(&book{id: 2, price: 1}, 1))

	n := countNotifications(c)
	c.Remove(1)
	assert.Equal(t, 1, *n)
	assert.False(t, c.Contains(1))
	assert.True(t, c.Contains(2))

	c.Remove(1)
	assert.Equal(t, 1, *n, "removing an absent id is silent")
}

func TestClearAlwaysNotifies(t *testing.T) {
	c := newCart()
	n := countNotifications(c)

	c.Clear()
	assert.Equal(t, 1, *n, "clear notifies even when already empty")

	require.NoError(t, c.Add(&book{id: 1, price: 1}, 4))
	c.Clear()
	assert.Empty(t, c.List())
	assert.Equal(t, 0, c.Count())
}

func TestNotificationOrderAndCount(t *testing.T) {
	c := newCart()

	var calls []string
	c.Subscribe(func() { calls = append(calls, "first") })
	c.Subscribe(func() { calls = append(calls, "second") })

	require.NoError(t, c.Add(&book{id: 1, price: 1}, 1))

	assert.Equal(t, []string{"first", "second"}, calls,
		"observers fire in registration order, exactly once each")
}

func TestUnsubscribe(t *testing.T) {
	c := newCart()

	var gone, kept int
	cancel := c.Subscribe(func() { gone++ })
	c.Subscribe(func() { kept++ })

	require.NoError(t, c.Add(&book{id: 1, price: 1}, 1))
	cancel()
	require.NoError(t, c.Add(&book{id: 1, price: 1}, 1))

	assert.Equal(t, 1, gone)
	assert.Equal(t, 2, kept)
}

func TestObserverReadsStateAfterMutation(t *testing.T) {
	c := newCart()

	var seenCount int
	var seenTotal float64
	c.Subscribe(func() {
		seenCount = c.Count()
		seenTotal = c.Total()
	})

	require.NoError(t, c.Add(&book{id: 1, price: 3}, 2))

	assert.Equal(t, 2, seenCount, "observer sees the already-applied state")
	assert.InDelta(t, 6.0, seenTotal, 1e-9)
}

func TestTotalTracksLivePrices(t *testing.T) {
	c := newCart()
	b1 := &book{id: 1, price: 10}
	b2 := &book{id: 2, price: 4}

	require.NoError(t, c.Add(b1, 2))
	require.NoError(t, c.Add(b2, 5))
	c.SetQuantity(2, 3)

	// Re-derive the total independently from the snapshot.
	var want float64
	for _, e := range c.List() {
		want += float64(e.Quantity) * e.Item.price
	}
	assert.InDelta(t, want, c.Total(), 1e-9)

	// Price changes on the referenced item show up immediately.
	b1.price = 20
	assert.InDelta(t, 2*20.0+3*4.0, c.Total(), 1e-9)
}

func TestListIsASnapshot(t *testing.T) {
	c := newCart()
	require.NoError(t, c.Add(&book{id: 1, price: 1}, 1))
	require.NoError(t, c.Add(&book{id: 2, price: 1}, 1))

	entries := c.List()
	entries[0].Quantity = 99

	assert.Equal(t, 1, c.QuantityOf(1))

	// Insertion order is stable across mutations of earlier entries.
	require.NoError(t, c.Add(&book{id: 1, price: 1}, 1))
	ids := []uint{c.List()[0].Item.id, c.List()[1].Item.id}
	assert.Equal(t, []uint{1, 2}, ids)
}

func TestQuantityOfAbsent(t *testing.T) {
	c := newCart()
	assert.Equal(t, 0, c.QuantityOf(123))
	assert.False(t, c.Contains(123))
}

func TestCheckoutScenario(t *testing.T) {
	c := newCart()
	b := &book{id: 7, price: 10.0}

	require.NoError(t, c.Add(b, 1))
	require.NoError(t, c.Add(b, 2))

	assert.Equal(t, 3, c.Count())
	assert.InDelta(t, 30.0, c.Total(), 1e-9)

	c.Decrement(7)
	c.Decrement(7)
	c.Decrement(7)

	assert.Empty(t, c.List())
	assert.InDelta(t, 0.0, c.Total(), 1e-9)
}

func TestConcurrentMutations(t *testing.T) {
	c := newCart()
	b := &book{id: 1, price: 1}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Add(b, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, c.Count())
	assert.Len(t, c.List(), 1)
}
