package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/masonry/pkg/core/masonry"
	errs "github.com/matzehuels/masonry/pkg/errors"
)

type tileDoc struct {
	ID      string   `json:"id"`
	Content any      `json:"content,omitempty"`
	Height  *float64 `json:"height,omitempty"`
}

type tilesDoc struct {
	Tiles []tileDoc `json:"tiles"`
}

// ReadTiles decodes a tile collection from r.
//
// The input is either a JSON array of tiles or an object with a "tiles"
// array:
//
//	[{"id": "song-1", "content": "Song 1"}, {"id": "song-2"}]
//	{"tiles": [{"id": "song-1", "content": {"title": "Song 1"}}]}
//
// Each tile needs a unique, non-empty "id". "content" is opaque and passed
// through untouched. "height" is optional and only used by callers that
// place pre-sized tiles.
//
// ReadTiles preserves input order, since order is presentation order.
// An empty collection is valid. ReadTiles does not close r.
func ReadTiles(r io.Reader) ([]masonry.Tile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var docs []tileDoc
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0:
		return nil, errs.New(errs.ErrCodeInvalidInput, "empty tile document")
	case trimmed[0] == '[':
		if err := json.Unmarshal(trimmed, &docs); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode tiles")
		}
	default:
		var wrapped tilesDoc
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode tiles")
		}
		docs = wrapped.Tiles
	}

	tiles := make([]masonry.Tile, 0, len(docs))
	seen := make(map[string]int, len(docs))
	for i, d := range docs {
		if err := errs.ValidateTileID(d.ID); err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
		if prev, dup := seen[d.ID]; dup {
			return nil, errs.New(errs.ErrCodeInvalidInput,
				"tile %d: duplicate id %q (first seen at tile %d)", i, d.ID, prev)
		}
		seen[d.ID] = i

		t := masonry.Tile{ID: d.ID, Content: d.Content}
		if d.Height != nil {
			if !errs.Finite(*d.Height) || *d.Height < 0 {
				return nil, errs.New(errs.ErrCodeInvalidInput, "tile %s: invalid height %v", d.ID, *d.Height)
			}
			t.Height = *d.Height
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

// ImportTiles reads the tile collection stored at path.
func ImportTiles(path string) ([]masonry.Tile, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "tile file not found: %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadTiles(f)
}

// IDScheme selects how generated tiles are identified.
type IDScheme string

const (
	// IDSequential yields "song-1", "song-2", ...
	IDSequential IDScheme = "sequential"
	// IDRandom yields random UUIDs.
	IDRandom IDScheme = "uuid"
)

// GenerateTiles returns n demo tiles labelled "Song 1" through "Song n".
func GenerateTiles(n int, scheme IDScheme) []masonry.Tile {
	if n < 0 {
		n = 0
	}
	tiles := make([]masonry.Tile, n)
	for i := range tiles {
		id := fmt.Sprintf("song-%d", i+1)
		if scheme == IDRandom {
			id = uuid.NewString()
		}
		tiles[i] = masonry.Tile{ID: id, Content: fmt.Sprintf("Song %d", i+1)}
	}
	return tiles
}
