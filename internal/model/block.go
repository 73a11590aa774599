package model

// BlockRecord carries a fully serialized block.
type BlockRecord struct {
	BlockID  string `json:"blockId"`
	BlockHex string `json:"blockHex"`
}

// BlockSummary combines block header fields with the height taken from the chain index.
type BlockSummary struct {
	BlockID        string `json:"blockId"`
	PrevBlockID    string `json:"prevBlockId"`
	MerkleRootHash string `json:"merkleRootHash"`
	Nonce          uint32 `json:"nonce"`
	Version        int32  `json:"version"`
	BlockHeight    int64  `json:"blockHeight"`
	BlockSize      int    `json:"blockSize"`
	Timestamp      int64  `json:"timestamp"`
	TxCount        int    `json:"txCount"`
}
