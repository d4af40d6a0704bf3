// Package storemock is the development collection store: a json-server style
// REST API over generic collections, backed by SQLite. The portal treats it as
// an opaque external store; nothing here knows about vagas or usuarios beyond
// their names.
package storemock

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrNotFound maps to a 404 at the HTTP layer.
var ErrNotFound = errors.New("storemock: document not found")

// Documento is one stored record of any collection. The payload is kept as
// raw JSON so the store stays schema-free; the id column is the only field
// the store itself owns.
type Documento struct {
	ID         uint           `gorm:"primaryKey;autoIncrement"`
	Collection string         `gorm:"index;not null"`
	Data       datatypes.JSON `gorm:"not null"`
}

type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Documento{}); err != nil {
		return nil, err
	}
	return &Store{DB: db}, nil
}

// List returns the collection in insertion order, optionally narrowed by
// exact-match field filters. Filtering happens over the decoded payloads:
// collections are small and the filter form is a single equality.
func (s *Store) List(collection string, filter map[string]string) ([]map[string]any, error) {
	var docs []Documento
	if err := s.DB.Where("collection = ?", collection).Order("id ASC").Find(&docs).Error; err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		body, err := materialize(d)
		if err != nil {
			return nil, err
		}
		if MatchesFilter(body, filter) {
			out = append(out, body)
		}
	}
	return out, nil
}

func (s *Store) Get(collection string, id uint) (map[string]any, error) {
	doc, err := s.find(collection, id)
	if err != nil {
		return nil, err
	}
	return materialize(doc)
}

// Create stores a new document. The store assigns the id; any id in the
// payload is discarded.
func (s *Store) Create(collection string, body map[string]any) (map[string]any, error) {
	delete(body, "id")
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	doc := Documento{Collection: collection, Data: datatypes.JSON(raw)}
	if err := s.DB.Create(&doc).Error; err != nil {
		return nil, err
	}
	return materialize(doc)
}

// Replace overwrites the whole payload of an existing document.
func (s *Store) Replace(collection string, id uint, body map[string]any) (map[string]any, error) {
	doc, err := s.find(collection, id)
	if err != nil {
		return nil, err
	}
	delete(body, "id")
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	doc.Data = datatypes.JSON(raw)
	if err := s.DB.Save(&doc).Error; err != nil {
		return nil, err
	}
	return materialize(doc)
}

// Patch merges only the named fields into the existing payload.
func (s *Store) Patch(collection string, id uint, fields map[string]any) (map[string]any, error) {
	doc, err := s.find(collection, id)
	if err != nil {
		return nil, err
	}

	var body map[string]any
	if err := json.Unmarshal(doc.Data, &body); err != nil {
		return nil, err
	}
	for k, v := range fields {
		if k == "id" {
			continue
		}
		body[k] = v
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	doc.Data = datatypes.JSON(raw)
	if err := s.DB.Save(&doc).Error; err != nil {
		return nil, err
	}
	return materialize(doc)
}

func (s *Store) Delete(collection string, id uint) error {
	doc, err := s.find(collection, id)
	if err != nil {
		return err
	}
	return s.DB.Delete(&doc).Error
}

func (s *Store) find(collection string, id uint) (Documento, error) {
	var doc Documento
	err := s.DB.Where("collection = ? AND id = ?", collection, id).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Documento{}, ErrNotFound
	}
	return doc, err
}

// materialize decodes the payload and injects the store-assigned id.
func materialize(doc Documento) (map[string]any, error) {
	var body map[string]any
	if err := json.Unmarshal(doc.Data, &body); err != nil {
		return nil, err
	}
	body["id"] = doc.ID
	return body, nil
}

// MatchesFilter applies exact-match query filters against a decoded document.
// Values are compared through their string form, so ?ativo=true and ?id=3
// behave like json-server's equality filters.
func MatchesFilter(body map[string]any, filter map[string]string) bool {
	for field, want := range filter {
		v, ok := body[field]
		if !ok {
			return false
		}
		if fmt.Sprint(v) != want {
			return false
		}
	}
	return true
}
