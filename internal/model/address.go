// Package model defines the normalized records returned by the common-blockchain API.
package model

// AddressSummary is the per-address balance projection.
type AddressSummary struct {
	Address       string `json:"address"`
	Balance       int64  `json:"balance"`
	TotalReceived int64  `json:"totalReceived"`
	TxCount       int64  `json:"txCount"`
}

// UnspentOutput is a spendable output owned by an address.
type UnspentOutput struct {
	Address       string `json:"address"`
	TxID          string `json:"txId"`
	Confirmations int64  `json:"confirmations"`
	Value         int64  `json:"value"`
	Vout          uint32 `json:"vout"`
}
