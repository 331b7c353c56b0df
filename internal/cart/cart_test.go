package cart

import (
	"path/filepath"
	"testing"

	"bulk-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProduct(id int, price float64, stock int) product.Product {
	return product.Product{ID: id, Name: "Test Product", Price: price, Category: "Fruits", Stock: stock}
}

func TestAdd(t *testing.T) {
	t.Run("New line starts at one", func(t *testing.T) {
		s := NewStore(NewMemoryStorage())
		s.Add(sampleProduct(1, 3.99, 100))

		item, ok := s.Get(1)
		require.True(t, ok)
		assert.Equal(t, 1, item.Quantity)
	})

	t.Run("Repeated adds increment without a stock check", func(t *testing.T) {
		s := NewStore(NewMemoryStorage())
		p := sampleProduct(1, 3.99, 2)
		for i := 0; i < 5; i++ {
			s.Add(p)
		}

		item, _ := s.Get(1)
		assert.Equal(t, 5, item.Quantity)
	})
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("Clamps to stock", func(t *testing.T) {
		s := NewStore(NewMemoryStorage())
		s.Add(sampleProduct(1, 3.99, 5))

		s.UpdateQuantity(1, 10)

		item, _ := s.Get(1)
		assert.Equal(t, 5, item.Quantity)
	})

	t.Run("Zero removes the line", func(t *testing.T) {
		s := NewStore(NewMemoryStorage())
		s.Add(sampleProduct(1, 3.99, 5))

		s.UpdateQuantity(1, 0)

		_, ok := s.Get(1)
		assert.False(t, ok)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("Negative removes the line", func(t *testing.T) {
		s := NewStore(NewMemoryStorage())
		s.Add(sampleProduct(1, 3.99, 5))

		s.UpdateQuantity(1, -3)

		assert.Equal(t, 0, s.Len())
	})

	t.Run("Unknown product is a no-op", func(t *testing.T) {
		s := NewStore(NewMemoryStorage())
		s.UpdateQuantity(99, 3)
		assert.Equal(t, 0, s.Len())
	})
}

func TestTotal(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	s.Add(sampleProduct(1, 3.99, 100))
	s.Add(sampleProduct(1, 3.99, 100))
	s.Add(sampleProduct(2, 2.49, 150))

	assert.InDelta(t, 2*3.99+2.49, s.Total(), 0.0001)
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, 2, s.Len())
}

func TestClear(t *testing.T) {
	storage := NewMemoryStorage()
	s := NewStore(storage)
	s.Add(sampleProduct(1, 3.99, 100))

	s.Clear()

	assert.Equal(t, 0, s.Len())
	data, err := storage.Load()
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestPersistence(t *testing.T) {
	t.Run("Round trip through storage", func(t *testing.T) {
		storage := NewMemoryStorage()
		s := NewStore(storage)
		s.Add(sampleProduct(1, 3.99, 100))
		s.Add(sampleProduct(2, 2.49, 150))
		s.UpdateQuantity(2, 4)

		restored := NewStore(storage)
		assert.Equal(t, 2, restored.Len())
		item, ok := restored.Get(2)
		require.True(t, ok)
		assert.Equal(t, 4, item.Quantity)
		assert.InDelta(t, s.Total(), restored.Total(), 0.0001)
	})

	t.Run("Corrupt snapshot yields an empty cart", func(t *testing.T) {
		storage := NewMemoryStorage()
		require.NoError(t, storage.Save([]byte("{not json")))

		s := NewStore(storage)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("File storage", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		storage := NewFileStorage(path)

		s := NewStore(storage)
		s.Add(sampleProduct(6, 2.49, 150))

		restored := NewStore(NewFileStorage(path))
		assert.Equal(t, 1, restored.Len())

		restored.Clear()
		data, err := storage.Load()
		require.NoError(t, err)
		assert.Empty(t, data)
	})
}

func TestItemsOrdering(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	s.Add(sampleProduct(7, 2.99, 100))
	s.Add(sampleProduct(1, 3.99, 100))
	s.Add(sampleProduct(6, 2.49, 150))

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, 1, items[0].Product.ID)
	assert.Equal(t, 6, items[1].Product.ID)
	assert.Equal(t, 7, items[2].Product.ID)
}
