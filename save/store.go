package save

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/betrothed/logger"
	"github.com/quasilyte/gdata"
	"github.com/sirupsen/logrus"
)

// itemStore is the key-value storage a Store writes to.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store reads and writes save slots. Each slot is a JSON blob with its
// SHA-256 kept in a sibling item.
type Store struct {
	items itemStore
}

// Open returns a store in the per-user data directory of appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("save: open storage: %w", err)
	}
	return NewStore(m), nil
}

// NewStore wraps any item storage.
func NewStore(items itemStore) *Store {
	return &Store{items: items}
}

func checksumKey(slot string) string {
	return slot + "_checksum"
}

// Save writes st to slot at the current version.
func (s *Store) Save(slot string, st *State) error {
	st.Version = CurrentVersion
	blob, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("save: encode %s: %w", slot, err)
	}
	if err := s.write(slot, blob); err != nil {
		return err
	}
	logger.Log.WithFields(logrus.Fields{
		"slot":  slot,
		"level": st.Level,
		"bytes": len(blob),
	}).Debug("Game saved")
	return nil
}

func (s *Store) write(slot string, blob []byte) error {
	if err := s.items.SaveItem(slot, blob); err != nil {
		return fmt.Errorf("save: write %s: %w", slot, err)
	}
	if err := s.items.SaveItem(checksumKey(slot), []byte(Checksum(blob))); err != nil {
		return fmt.Errorf("save: write %s checksum: %w", slot, err)
	}
	return nil
}

// Load reads slot. A blob that does not match its checksum is refused with
// ErrCorruptSave. Older saves are upgraded and written back before they
// are returned.
func (s *Store) Load(slot string) (*State, error) {
	log := logger.Log.WithField("slot", slot)

	blob, err := s.items.LoadItem(slot)
	if err != nil {
		return nil, fmt.Errorf("save: read %s: %w", slot, err)
	}
	if len(blob) == 0 {
		return nil, ErrNoSave
	}
	sum, err := s.items.LoadItem(checksumKey(slot))
	if err != nil {
		return nil, fmt.Errorf("save: read %s checksum: %w", slot, err)
	}
	if !Verify(blob, sum) {
		log.Warn("Save checksum mismatch")
		return nil, fmt.Errorf("%w: %s checksum mismatch", ErrCorruptSave, slot)
	}

	var doc Document
	if err := json.Unmarshal(blob, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}
	from, _ := doc.Version()
	upgraded, err := Upgrade(doc)
	if err != nil {
		return nil, err
	}
	if upgraded {
		if blob, err = json.Marshal(doc); err != nil {
			return nil, fmt.Errorf("save: encode upgraded %s: %w", slot, err)
		}
		if err := s.write(slot, blob); err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{
			"from": VersionName(from),
			"to":   VersionName(CurrentVersion),
		}).Info("Save upgraded")
	}

	var st State
	if err := json.Unmarshal(blob, &st); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}
	if err := st.validate(); err != nil {
		return nil, err
	}
	return &st, nil
}
