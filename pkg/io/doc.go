// Package io provides JSON import of tile collections and JSON export of
// computed masonry layouts.
//
// # Tile Format
//
// Tiles are read from a JSON array, or from an object with a "tiles" array:
//
//	{
//	  "tiles": [
//	    {"id": "song-1", "content": "Song 1"},
//	    {"id": "song-2", "content": {"title": "Song 2", "artist": "..."}},
//	    {"id": "song-3", "height": 45}
//	  ]
//	}
//
// Required:
//   - id: Unique string identifier
//
// Optional:
//   - content: Any JSON value; carried through to the output untouched
//   - height: Pre-assigned height, used only for pre-sized placement
//
// Use [ImportTiles] to read from a file path or [ReadTiles] to read from any
// io.Reader. [GenerateTiles] builds the demo collection ("Song 1" .. "Song n").
//
// # Layout Format
//
// [WriteLayout] and [ExportLayout] emit the output contract consumed by
// presentation layers: an ordered list of columns, each an ordered list of
// tiles with their final heights, plus metadata describing the run:
//
//	{
//	  "width": 1280,
//	  "policy": "weighted",
//	  "clamp": true,
//	  "column_count": 5,
//	  "max_height": 240,
//	  "spread": 0,
//	  "columns": [
//	    {"total_height": 240, "tiles": [{"id": "song-1", "content": "Song 1", "height": 48}]}
//	  ]
//	}
//
// [ReadLayout] decodes the same format for tools that render saved layouts.
package io
