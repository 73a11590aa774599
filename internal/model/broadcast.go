package model

import "time"

// Broadcast is a journal entry for a transaction accepted by the node.
type Broadcast struct {
	Coin        Coin
	Network     Network
	TxID        string
	Size        uint32
	BroadcastAt time.Time
}
