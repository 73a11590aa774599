package chain

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/wire"
)

// BlockHex returns the hex encoded block serialization.
func BlockHex(block *wire.MsgBlock) (string, error) {
	var buf bytes.Buffer
	buf.Grow(block.SerializeSize())
	if err := block.Serialize(&buf); err != nil {
		return "", fmt.Errorf("serialize block %s: %w", block.BlockHash(), err)
	}
	return hex.EncodeToString(buf.Bytes()), nil
}
