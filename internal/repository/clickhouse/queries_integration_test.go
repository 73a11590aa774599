package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/commonblockchain/internal/chain"
	"github.com/goodnatureofminers/commonblockchain/internal/model"
)

func (s *RepositorySuite) TestAddressTotalsAndAppearances() {
	s.seedChain()
	s.expectObserve("address_totals")
	s.expectObserve("address_appearances")

	totals, err := s.repo.AddressTotals(s.testCtx, "A")
	s.Require().NoError(err)
	s.Equal(model.AddressTotals{Received: 5900, Spent: 5000}, totals)

	appearances, err := s.repo.AddressAppearances(s.testCtx, "A")
	s.Require().NoError(err)
	s.Equal(uint64(2), appearances)
}

func (s *RepositorySuite) TestAddressTotals_unknownAddress() {
	s.seedChain()
	s.expectObserve("address_totals")

	totals, err := s.repo.AddressTotals(s.testCtx, "nobody")
	s.Require().NoError(err)
	s.Equal(model.AddressTotals{}, totals)
}

func (s *RepositorySuite) TestAddressHistory() {
	s.seedChain()
	s.expectObserve("address_history")
	s.expectObserve("address_history")

	entries, err := s.repo.AddressHistory(s.testCtx, []string{"A"}, 0, chain.MaxHeight)
	s.Require().NoError(err)
	s.Equal([]model.HistoryEntry{
		{TxID: hash64("1"), BlockHeight: 100, BlockHash: hash64("a")},
		{TxID: hash64("2"), BlockHeight: 101, BlockHash: hash64("b")},
	}, entries)

	entries, err = s.repo.AddressHistory(s.testCtx, []string{"A", "C"}, 101, chain.MaxHeight)
	s.Require().NoError(err)
	s.Equal([]model.HistoryEntry{
		{TxID: hash64("2"), BlockHeight: 101, BlockHash: hash64("b")},
		{TxID: hash64("3"), BlockHeight: 102, BlockHash: hash64("c")},
	}, entries)
}

func (s *RepositorySuite) TestAddressUnspents() {
	s.seedChain()
	s.expectObserve("address_unspents")

	outputs, err := s.repo.AddressUnspents(s.testCtx, []string{"A", "B"})
	s.Require().NoError(err)
	s.Equal([]model.AddressOutput{
		{Address: "B", TxID: hash64("1"), Index: 1, Value: 700, BlockHeight: 100},
		{Address: "B", TxID: hash64("2"), Index: 0, Value: 4000, BlockHeight: 101},
		{Address: "A", TxID: hash64("2"), Index: 1, Value: 900, BlockHeight: 101},
	}, outputs)
}

func (s *RepositorySuite) TestMaxBlockHeightAndHeightByHash() {
	s.seedChain()
	s.expectObserve("max_block_height")
	s.expectObserve("block_height_by_hash")
	s.metrics.EXPECT().Observe("block_height_by_hash", gomock.Not(gomock.Nil()), gomock.Any())

	tip, err := s.repo.MaxBlockHeight(s.testCtx)
	s.Require().NoError(err)
	s.Equal(uint64(102), tip)

	height, err := s.repo.BlockHeightByHash(s.testCtx, hash64("b"))
	s.Require().NoError(err)
	s.Equal(uint64(101), height)

	_, err = s.repo.BlockHeightByHash(s.testCtx, hash64("e"))
	s.Require().ErrorIs(err, chain.ErrNotFound)
}

func (s *RepositorySuite) TestTransactionOutputsLookupByTxIDs() {
	s.seedChain()
	s.expectObserve("transaction_outputs_lookup_by_txids")

	outputs, err := s.repo.TransactionOutputsLookupByTxIDs(s.testCtx, []string{hash64("1"), hash64("9")})
	s.Require().NoError(err)
	s.Equal(map[string][]model.OutputValue{
		hash64("1"): {
			{TxID: hash64("1"), Index: 0, Value: 5000},
			{TxID: hash64("1"), Index: 1, Value: 700},
		},
	}, outputs)
}

func (s *RepositorySuite) TestInsertBroadcasts() {
	s.expectObserve("insert_broadcasts")

	at := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	err := s.repo.InsertBroadcasts(s.testCtx, []model.Broadcast{
		{Coin: model.BTC, Network: model.Mainnet, TxID: hash64("1"), Size: 225, BroadcastAt: at},
		{Coin: model.BTC, Network: model.Mainnet, TxID: hash64("2"), Size: 250, BroadcastAt: at.Add(time.Second)},
	})
	s.Require().NoError(err)
	s.Equal(uint64(2), s.countRows("cbi_broadcasts"))
}
