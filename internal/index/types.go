package index

import (
	"context"

	"github.com/goodnatureofminers/commonblockchain/internal/chain"
	"github.com/goodnatureofminers/commonblockchain/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// AddressRepository is the address projection of the UTXO store.
	AddressRepository interface {
		AddressTotals(ctx context.Context, address string) (model.AddressTotals, error)
		AddressAppearances(ctx context.Context, address string) (uint64, error)
		AddressHistory(ctx context.Context, addresses []string, fromHeight, toHeight uint64) ([]model.HistoryEntry, error)
		AddressUnspents(ctx context.Context, addresses []string) ([]model.AddressOutput, error)
		MaxBlockHeight(ctx context.Context) (uint64, error)
	}
	// HeightRepository resolves stored block heights.
	HeightRepository interface {
		BlockHeightByHash(ctx context.Context, hash string) (uint64, error)
	}
	// TransactionSource hydrates transaction ids into full transactions.
	TransactionSource interface {
		GetWithBlockInfo(ctx context.Context, txid string, queryMempool bool) (*chain.Transaction, error)
	}
)
