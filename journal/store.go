package journal

import (
	"fmt"

	"github.com/rustyeddy/tradejournal/config"
)

// OpenStore returns the store selected by cfg.
func OpenStore(cfg config.StoreConfig) (Store, error) {
	switch cfg.Type {
	case "csv":
		return NewCSV(cfg.Path), nil
	case "sqlite":
		s, err := NewSQLite(cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.Type)
	}
}
