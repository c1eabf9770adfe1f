package io

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/matzehuels/masonry/pkg/core/masonry"
	errs "github.com/matzehuels/masonry/pkg/errors"
)

// Meta records how a layout was produced.
type Meta struct {
	Width  float64 `json:"width"`
	Policy string  `json:"policy,omitempty"`
	Clamp  bool    `json:"clamp"`
	Seed   uint64  `json:"seed,omitempty"`
}

type layoutDoc struct {
	Meta
	ColumnCount int         `json:"column_count"`
	MaxHeight   float64     `json:"max_height"`
	Spread      float64     `json:"spread"`
	Columns     []columnDoc `json:"columns"`
}

type columnDoc struct {
	TotalHeight float64      `json:"total_height"`
	Tiles       []placedTile `json:"tiles"`
}

type placedTile struct {
	ID      string  `json:"id"`
	Content any     `json:"content,omitempty"`
	Height  float64 `json:"height"`
}

// WriteLayout encodes l and its metadata as indented JSON:
//
//	{
//	  "width": 1280, "policy": "weighted", "clamp": true,
//	  "column_count": 5, "max_height": 172.5, "spread": 2.5,
//	  "columns": [
//	    {"total_height": 170, "tiles": [{"id": "song-1", "content": "Song 1", "height": 30}]}
//	  ]
//	}
//
// Columns and tiles keep layout order. Empty columns encode an empty tiles
// array rather than null.
func WriteLayout(l masonry.Layout, meta Meta, w io.Writer) error {
	out := layoutDoc{
		Meta:        meta,
		ColumnCount: l.Len(),
		MaxHeight:   l.MaxHeight(),
		Spread:      l.Spread(),
		Columns:     make([]columnDoc, l.Len()),
	}
	for i, c := range l.Columns {
		col := columnDoc{TotalHeight: c.TotalHeight, Tiles: make([]placedTile, len(c.Tiles))}
		for j, t := range c.Tiles {
			col.Tiles[j] = placedTile{ID: t.ID, Content: t.Content, Height: t.Height}
		}
		out.Columns[i] = col
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportLayout writes l to a JSON file at path.
func ExportLayout(l masonry.Layout, meta Meta, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteLayout(l, meta, f)
}

// ReadLayout decodes a layout written by [WriteLayout]. Column totals are
// checked against their tiles so hand-edited files cannot carry stale sums.
func ReadLayout(r io.Reader) (masonry.Layout, Meta, error) {
	var doc layoutDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return masonry.Layout{}, Meta{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode layout")
	}

	l := masonry.Layout{Columns: make([]masonry.Column, len(doc.Columns))}
	for i, cd := range doc.Columns {
		col := masonry.Column{TotalHeight: cd.TotalHeight, Tiles: make([]masonry.Tile, len(cd.Tiles))}
		for j, t := range cd.Tiles {
			col.Tiles[j] = masonry.Tile{ID: t.ID, Content: t.Content, Height: t.Height}
		}
		if math.Abs(col.Sum()-col.TotalHeight) > 1e-6 {
			return masonry.Layout{}, Meta{}, errs.New(errs.ErrCodeInvalidInput,
				"column %d: total_height %v does not match tile sum %v", i, col.TotalHeight, col.Sum())
		}
		l.Columns[i] = col
	}
	return l, doc.Meta, nil
}
