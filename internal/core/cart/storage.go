package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/rl1809/webstore/internal/core/domain"
	"github.com/rl1809/webstore/internal/port"
)

// StorageKey is the key the cart list is persisted under.
const StorageKey = "shopping-cart"

func load(ctx context.Context, store port.KeyValueStore) []domain.CartItem {
	if store == nil {
		return []domain.CartItem{}
	}

	data, err := store.Get(ctx, StorageKey)
	if errors.Is(err, port.ErrKeyNotFound) {
		return []domain.CartItem{}
	}
	if err != nil {
		log.Printf("cart: read %s failed, starting empty: %v", StorageKey, err)
		return []domain.CartItem{}
	}

	items, err := decode(data)
	if err != nil {
		log.Printf("cart: decode %s failed, starting empty: %v", StorageKey, err)
		return []domain.CartItem{}
	}
	return items
}

// save overwrites the persisted list. The outcome is not reported to the
// mutator that triggered it.
func save(ctx context.Context, store port.KeyValueStore, items []domain.CartItem) {
	if store == nil {
		return
	}

	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("cart: encode failed: %v", err)
		return
	}
	if err := store.Set(ctx, StorageKey, data); err != nil {
		log.Printf("cart: write %s failed: %v", StorageKey, err)
	}
}

// decode parses a persisted list. Entries that would break the cart
// invariants (non-positive quantity, repeated product) make the whole value
// unreadable.
func decode(data []byte) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("product %d: quantity %d below 1", item.ProductID, item.Quantity)
		}
		if _, dup := seen[item.ProductID]; dup {
			return nil, fmt.Errorf("product %d: listed twice", item.ProductID)
		}
		seen[item.ProductID] = struct{}{}
	}

	if items == nil {
		items = []domain.CartItem{}
	}
	return items, nil
}
