package cache

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"math/big"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/zoobzio/wareql/warehouse"
)

func init() {
	// Cell types drivers return beyond the gob basics.
	gob.Register(time.Time{})
	gob.Register(time.Duration(0))
	gob.Register(&big.Int{})
}

// codec gob-encodes result sets and compresses them with zstd.
// EncodeAll and DecodeAll are safe for concurrent use.
type codec struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func newCodec() (*codec, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		encoder.Close()
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &codec{encoder: encoder, decoder: decoder}, nil
}

func (c *codec) encode(rs *warehouse.ResultSet) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(rs); err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return c.encoder.EncodeAll(buf.Bytes(), nil), nil
}

func (c *codec) decode(data []byte) (*warehouse.ResultSet, error) {
	raw, err := c.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress result: %w", err)
	}
	var rs warehouse.ResultSet
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&rs); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	return &rs, nil
}

func (c *codec) close() {
	c.encoder.Close()
	c.decoder.Close()
}
