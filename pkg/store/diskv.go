package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Table names a keyed record table.
type Table string

const (
	// TableProfiles holds recipient records keyed by profile id.
	TableProfiles Table = "profiles"
	// TableCategories holds phrase category records keyed by category id.
	TableCategories Table = "categories"
)

// ErrNotFound is returned when a table has no record under the requested id.
var ErrNotFound = errors.New("store: record not found")

// Record is one raw table row: the id and its JSON encoding.
type Record struct {
	ID   string
	Data []byte
}

// Persistence is the keyed-table contract the rest of the application depends
// on. Records are JSON documents; callers own encoding and decoding of their
// concrete types.
type Persistence interface {
	Get(table Table, id string) ([]byte, error)
	GetAll(ctx context.Context, table Table) ([]Record, error)
	Add(table Table, id string, record any) error
	Update(table Table, id string, partial map[string]any) error
	Put(table Table, id string, record any) error
	Delete(table Table, id string) error
	Clear(ctx context.Context, table Table) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Get(table Table, id string) ([]byte, error) {
	data, err := p.d.Read(toKey(table, id))
	if err != nil {
		return nil, fmt.Errorf("store: get %s/%s: %w", table, id, ErrNotFound)
	}
	return data, nil
}

func (p *persistence) GetAll(ctx context.Context, table Table) ([]Record, error) {
	all := make([]Record, 0)
	for key := range p.d.Keys(ctx.Done()) {
		t, id, err := fromKey(key)
		if err != nil || t != table {
			continue
		}
		data, err := p.d.Read(key)
		if err != nil {
			return nil, fmt.Errorf("store: read %s: %w", key, err)
		}
		all = append(all, Record{ID: id, Data: data})
	}
	// Keys come back in filesystem order; sort by id so listings are
	// deterministic, matching primary-key iteration in the data model.
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (p *persistence) Add(table Table, id string, record any) error {
	key := toKey(table, id)
	if p.d.Has(key) {
		return fmt.Errorf("store: add %s/%s: record exists", table, id)
	}
	return p.write(key, record)
}

// Update merges partial fields into the stored JSON document. A missing record
// is a no-op, mirroring update semantics of the table contract.
func (p *persistence) Update(table Table, id string, partial map[string]any) error {
	key := toKey(table, id)
	if !p.d.Has(key) {
		return nil
	}
	data, err := p.d.Read(key)
	if err != nil {
		return fmt.Errorf("store: update %s/%s: %w", table, id, err)
	}
	doc := make(map[string]any)
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("store: update %s/%s: %w", table, id, err)
	}
	for field, value := range partial {
		doc[field] = value
	}
	return p.write(key, doc)
}

func (p *persistence) Put(table Table, id string, record any) error {
	return p.write(toKey(table, id), record)
}

func (p *persistence) Delete(table Table, id string) error {
	key := toKey(table, id)
	if !p.d.Has(key) {
		return nil
	}
	return p.d.Erase(key)
}

func (p *persistence) Clear(ctx context.Context, table Table) error {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if t, _, err := fromKey(key); err == nil && t == table {
			keys = append(keys, key)
		}
	}
	for _, key := range keys {
		if err := p.d.Erase(key); err != nil {
			return fmt.Errorf("store: clear %s: %w", table, err)
		}
	}
	return nil
}

func (p *persistence) write(key string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

// Keys are `<table>-<encoded id>`; the table becomes the directory and the
// encoded id the file name. Record ids are user text (unicode names), so they
// are base64url encoded on the way to the filesystem.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return &diskv.PathKey{FileName: s}
	}
	return &diskv.PathKey{Path: []string{parts[0]}, FileName: parts[1]}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

func toKey(table Table, id string) string {
	return fmt.Sprintf("%s-%s", table, encodeID(id))
}

func fromKey(key string) (Table, string, error) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("store: malformed key %q", key)
	}
	id, err := decodeID(parts[1])
	if err != nil {
		return "", "", fmt.Errorf("store: malformed key %q: %w", key, err)
	}
	return Table(parts[0]), id, nil
}

func encodeID(id string) string {
	return base64.URLEncoding.EncodeToString([]byte(id))
}

func decodeID(s string) (string, error) {
	id, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return "", err
	}
	return string(id), nil
}
