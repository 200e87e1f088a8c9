package storage

import (
	"fmt"
	"strings"

	"github.com/quasilyte/gdata"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/fruit-slice/internal/progress"
)

// itemStore is the subset of gdata.Manager used for blobs.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// BlobPersister stores a progression record as one msgpack blob in the
// per-user application data directory managed by gdata.
type BlobPersister struct {
	items itemStore
	key   string
}

var _ progress.Persister = (*BlobPersister)(nil)

// OpenBlob opens the gdata store for appName and binds it to profile.
func OpenBlob(appName, profile string) (*BlobPersister, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open app data: %w", err)
	}
	return newBlobPersister(m, profile), nil
}

func newBlobPersister(items itemStore, profile string) *BlobPersister {
	return &BlobPersister{items: items, key: blobKey(profile)}
}

// Load decodes the saved blob. Returns progress.ErrNoRecord when absent.
func (b *BlobPersister) Load() (progress.Record, error) {
	data, err := b.items.LoadItem(b.key)
	if err != nil {
		return progress.Record{}, fmt.Errorf("storage: cannot read %s: %w", b.key, err)
	}
	if data == nil {
		return progress.Record{}, progress.ErrNoRecord
	}

	var rec progress.Record
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return progress.Record{}, fmt.Errorf("storage: cannot decode %s: %w", b.key, err)
	}
	return rec, nil
}

// Save encodes rec and writes it.
func (b *BlobPersister) Save(rec progress.Record) error {
	data, err := msgpack.Marshal(&rec)
	if err != nil {
		return fmt.Errorf("storage: cannot encode progress: %w", err)
	}
	if err := b.items.SaveItem(b.key, data); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", b.key, err)
	}
	return nil
}

// blobKey turns a profile name into a file-safe item key.
func blobKey(profile string) string {
	if profile == "" {
		profile = "local"
	}
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, profile)
	return "progress_" + clean
}
