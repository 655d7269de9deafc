package cart

import (
	"testing"

	"storefront-service/internal/products"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id, name string, price float64) products.Product {
	return products.Product{ID: id, Name: name, Price: price, Image: "img-" + id}
}

func TestAdd(t *testing.T) {
	t.Run("repeated adds collapse into one line", func(t *testing.T) {
		s := NewStore()
		p := product("p1", "Blue Shirt", 999)

		for i := 0; i < 4; i++ {
			s.Add("sess", p)
		}

		items := s.Items("sess")
		require.Len(t, items, 1)
		assert.Equal(t, "p1", items[0].ID)
		assert.Equal(t, 4, items[0].Quantity)
	})

	t.Run("snapshot is taken at add time", func(t *testing.T) {
		s := NewStore()
		p := product("p1", "Blue Shirt", 999)
		s.Add("sess", p)

		// A later catalog change must not touch the line.
		p.Price = 1
		p.Name = "changed"

		items := s.Items("sess")
		require.Len(t, items, 1)
		assert.Equal(t, "Blue Shirt", items[0].Name)
		assert.Equal(t, 999.0, items[0].Price)
	})

	t.Run("lines keep insertion order", func(t *testing.T) {
		s := NewStore()
		s.Add("sess", product("a", "A", 1))
		s.Add("sess", product("b", "B", 2))
		s.Add("sess", product("c", "C", 3))
		s.Add("sess", product("b", "B", 2))

		items := s.Items("sess")
		require.Len(t, items, 3)
		assert.Equal(t, []string{"a", "b", "c"}, []string{items[0].ID, items[1].ID, items[2].ID})
	})

	t.Run("sessions are independent", func(t *testing.T) {
		s := NewStore()
		s.Add("one", product("p1", "A", 1))

		assert.Empty(t, s.Items("two"))
	})
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("delta then inverse delta restores quantity", func(t *testing.T) {
		s := NewStore()
		p := product("p1", "A", 10)
		s.Add("sess", p)
		s.Add("sess", p)
		s.Add("sess", p) // quantity 3

		s.UpdateQuantity("sess", "p1", 2)
		s.UpdateQuantity("sess", "p1", -2)

		items := s.Items("sess")
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)
	})

	t.Run("crossing zero removes the line and is not invertible", func(t *testing.T) {
		s := NewStore()
		s.Add("sess", product("p1", "A", 10)) // quantity 1

		s.UpdateQuantity("sess", "p1", -1)
		assert.Empty(t, s.Items("sess"))

		// The inverse delta finds nothing to act on.
		s.UpdateQuantity("sess", "p1", 1)
		assert.Empty(t, s.Items("sess"))
	})

	t.Run("large negative delta removes rather than going negative", func(t *testing.T) {
		s := NewStore()
		s.Add("sess", product("p1", "A", 10))
		s.Add("sess", product("p1", "A", 10))

		s.UpdateQuantity("sess", "p1", -5)
		assert.Empty(t, s.Items("sess"))
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		s := NewStore()
		s.Add("sess", product("p1", "A", 10))

		s.UpdateQuantity("sess", "nope", 3)

		items := s.Items("sess")
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)
	})
}

func TestRemove(t *testing.T) {
	s := NewStore()
	s.Add("sess", product("p1", "A", 10))
	s.Add("sess", product("p2", "B", 20))

	s.Remove("sess", "p1")
	items := s.Items("sess")
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ID)

	// Absent id is a no-op.
	s.Remove("sess", "p1")
	assert.Len(t, s.Items("sess"), 1)
}

func TestTotal(t *testing.T) {
	t.Run("empty cart totals zero", func(t *testing.T) {
		s := NewStore()
		assert.Equal(t, 0.0, s.Total("sess"))
	})

	t.Run("total is the sum of price times quantity", func(t *testing.T) {
		s := NewStore()
		s.Add("sess", product("p1", "A", 999))
		s.Add("sess", product("p1", "A", 999))
		s.Add("sess", product("p2", "B", 50.5))

		assert.InDelta(t, 999*2+50.5, s.Total("sess"), 1e-9)
	})

	t.Run("total follows every mutation", func(t *testing.T) {
		s := NewStore()
		s.Add("sess", product("p1", "A", 100))
		s.UpdateQuantity("sess", "p1", 4) // quantity 5
		assert.InDelta(t, 500, s.Total("sess"), 1e-9)

		s.Remove("sess", "p1")
		assert.Equal(t, 0.0, s.Total("sess"))
	})
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Add("sess", product("p1", "A", 10))
	s.Add("sess", product("p2", "B", 20))

	s.Clear("sess")

	assert.Empty(t, s.Items("sess"))
	assert.Equal(t, 0.0, s.Total("sess"))
}
