package storage

import (
	"encoding/json"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/hextiles/internal/tile"
)

// Shared coders; EncodeAll and DecodeAll are safe for concurrent use.
var (
	cellEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	cellDecoder, _ = zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
)

// encodeCells stores states as a zstd-compressed JSON array of state text.
func encodeCells(states []tile.State) ([]byte, error) {
	raw, err := json.Marshal(states)
	if err != nil {
		return nil, fmt.Errorf("encode cells: %w", err)
	}
	return cellEncoder.EncodeAll(raw, nil), nil
}

func decodeCells(blob []byte) ([]tile.State, error) {
	raw, err := cellDecoder.DecodeAll(blob, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress cells: %w", err)
	}
	var states []tile.State
	if err := json.Unmarshal(raw, &states); err != nil {
		return nil, fmt.Errorf("decode cells: %w", err)
	}
	return states, nil
}
