package cart

import (
	"encoding/json"
	"sort"

	"bulk-be/internal/logger"
	"bulk-be/internal/product"

	"go.uber.org/zap"
)

// Item is one cart line: a product snapshot taken at add time plus the
// selected quantity.
type Item struct {
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Store is the session cart. Every mutation writes the full snapshot
// through the injected storage; writes are fire-and-forget.
type Store struct {
	storage Storage
	items   map[int]Item
}

// NewStore rehydrates the cart from storage. A missing or corrupt
// snapshot silently yields an empty cart; the failure is logged, never
// surfaced.
func NewStore(storage Storage) *Store {
	s := &Store{
		storage: storage,
		items:   make(map[int]Item),
	}

	data, err := storage.Load()
	if err != nil {
		logger.L().Warn("failed to load saved cart", zap.Error(err))
		return s
	}
	if len(data) == 0 {
		return s
	}

	if err := json.Unmarshal(data, &s.items); err != nil {
		logger.L().Warn("failed to parse saved cart", zap.Error(err))
		s.items = make(map[int]Item)
	}

	return s
}

// Add puts one more unit of the product in the cart. There is no stock
// check here; only UpdateQuantity clamps, so repeated adds can exceed
// the available stock.
func (s *Store) Add(p product.Product) {
	item, ok := s.items[p.ID]
	if ok {
		item.Quantity++
	} else {
		item = Item{Product: p, Quantity: 1}
	}
	s.items[p.ID] = item
	s.persist()
}

// UpdateQuantity sets the quantity for a product already in the cart.
// A quantity of zero or less removes the line; anything above the
// snapshot stock is clamped down to it. Unknown products are ignored.
func (s *Store) UpdateQuantity(productID, quantity int) {
	item, ok := s.items[productID]
	if !ok {
		return
	}

	if quantity <= 0 {
		delete(s.items, productID)
		s.persist()
		return
	}

	if quantity > item.Product.Stock {
		quantity = item.Product.Stock
	}
	item.Quantity = quantity
	s.items[productID] = item
	s.persist()
}

// Remove deletes the line unconditionally.
func (s *Store) Remove(productID int) {
	delete(s.items, productID)
	s.persist()
}

// Total recomputes the cart total from scratch using the price snapshot
// stored at add time, not the live catalog price.
func (s *Store) Total() float64 {
	var total float64
	for _, item := range s.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// Items returns the lines ordered by product id.
func (s *Store) Items() []Item {
	items := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Product.ID < items[j].Product.ID
	})
	return items
}

func (s *Store) Get(productID int) (Item, bool) {
	item, ok := s.items[productID]
	return item, ok
}

// Len returns the number of distinct lines.
func (s *Store) Len() int {
	return len(s.items)
}

// Count returns the total number of units across all lines.
func (s *Store) Count() int {
	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Clear empties the cart and its persisted snapshot.
func (s *Store) Clear() {
	s.items = make(map[int]Item)
	if err := s.storage.Clear(); err != nil {
		logger.L().Warn("failed to clear saved cart", zap.Error(err))
	}
}

func (s *Store) persist() {
	data, err := json.Marshal(s.items)
	if err != nil {
		logger.L().Warn("failed to serialize cart", zap.Error(err))
		return
	}
	if err := s.storage.Save(data); err != nil {
		logger.L().Warn("failed to save cart", zap.Error(err))
	}
}
