package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sitedesk/sitedesk/internal/store"
)

// loadCollection reads and decodes the collection stored under key. A missing
// key or malformed payload is treated as absent: the zero slice is returned
// and ok is false. Parse failures never propagate.
func loadCollection[T any](ctx context.Context, st store.Store, key string) (items []T, ok bool, err error) {
	raw, present, err := st.Get(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("loading %s: %w", key, err)
	}
	if !present {
		return nil, false, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, nil
	}
	return items, true, nil
}

// saveCollection encodes and writes the full collection under key.
func saveCollection[T any](ctx context.Context, st store.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := st.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}
