package sidecar

import (
	"encoding/json"
	"errors"
	"fmt"
)

var errMissingField = errors.New("missing field")

// Chunk is one line of sidecar output.
type Chunk[T any] struct {
	Data []T `json:"data"`
}

// TabItem is an open browser tab.
type TabItem struct {
	ID       uint64 `json:"id"`
	Domain   string `json:"domain"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	WindowID uint64 `json:"windowId"`
}

func (TabItem) fields() []string {
	return []string{"id", "domain", "title", "url", "windowId"}
}

// BookmarkItem is a bookmark and the id of its parent folder.
type BookmarkItem struct {
	URL    string `json:"url"`
	Title  string `json:"title"`
	ID     string `json:"id"`
	Parent string `json:"parent"`
}

func (BookmarkItem) fields() []string {
	return []string{"url", "title", "id", "parent"}
}

// HistoryItem is a history entry. TC and VC are the typed and visit counts,
// T the last visit time in milliseconds.
type HistoryItem struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	ID    string `json:"id"`
	TC    uint64 `json:"tc"`
	VC    uint64 `json:"vc"`
	T     uint64 `json:"t"`
}

func (HistoryItem) fields() []string {
	return []string{"url", "title", "id", "tc", "vc", "t"}
}

type item interface {
	TabItem | BookmarkItem | HistoryItem
	fields() []string
}

// DecodeChunk decodes one line into its items. Every field of T is required,
// unknown fields are ignored.
func DecodeChunk[T item](line []byte) ([]T, error) {
	var raw struct {
		Data *[]map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(line, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if raw.Data == nil {
		return nil, fmt.Errorf("%w: %w: %q", ErrDecode, errMissingField, "data")
	}

	var zero T
	required := zero.fields()
	items := make([]T, 0, len(*raw.Data))
	for i, obj := range *raw.Data {
		for _, k := range required {
			if _, ok := obj[k]; !ok {
				return nil, fmt.Errorf("%w: item %d: %w: %q", ErrDecode, i, errMissingField, k)
			}
		}
		b, err := json.Marshal(obj)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrDecode, i, err)
		}
		var it T
		if err := json.Unmarshal(b, &it); err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrDecode, i, err)
		}
		items = append(items, it)
	}

	return items, nil
}

// decodeFn decodes a line and returns its items encoded as JSON.
type decodeFn func(line []byte) ([]json.RawMessage, error)

func decoder[T item]() decodeFn {
	return func(line []byte) ([]json.RawMessage, error) {
		items, err := DecodeChunk[T](line)
		if err != nil {
			return nil, err
		}
		out := make([]json.RawMessage, 0, len(items))
		for _, it := range items {
			b, err := json.Marshal(it)
			if err != nil {
				return nil, fmt.Errorf("encoding item: %w", err)
			}
			out = append(out, b)
		}

		return out, nil
	}
}
