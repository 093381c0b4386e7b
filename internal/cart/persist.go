package cart

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/blackberrycakes/storefront/internal/storage"
)

// StorageKey is the named key the cart is persisted under.
const StorageKey = "cart-storage"

// StoragePersister keeps the cart as a JSON array of lines in a storage.Store.
// There is no schema versioning: if the stored shape no longer decodes, Load
// logs the failure and reports an empty cart rather than surfacing an error.
type StoragePersister struct {
	store  storage.Store
	key    string
	logger *zap.Logger
}

// NewStoragePersister binds a persister to the given store under StorageKey.
func NewStoragePersister(store storage.Store, logger *zap.Logger) *StoragePersister {
	return NewKeyedStoragePersister(store, StorageKey, logger)
}

// NewKeyedStoragePersister binds a persister to an explicit key. The HTTP
// layer derives one key per cart id from StorageKey.
func NewKeyedStoragePersister(store storage.Store, key string, logger *zap.Logger) *StoragePersister {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StoragePersister{store: store, key: key, logger: logger}
}

// Save writes the lines as JSON.
func (p *StoragePersister) Save(lines []Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := p.store.Put(p.key, data); err != nil {
		p.logger.Warn("cart save failed", zap.Error(err))
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Load reads the persisted lines. A missing key yields an empty cart; a
// payload that no longer decodes is logged and also yields an empty cart.
func (p *StoragePersister) Load() ([]Line, error) {
	data, err := p.store.Get(p.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		p.logger.Warn("cart load failed", zap.Error(err))
		return nil, nil
	}
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		p.logger.Warn("cart payload did not decode, starting empty", zap.Error(err))
		return nil, nil
	}
	return lines, nil
}
