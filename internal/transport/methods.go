package transport

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
)

// Method is an entry of the capability table.
type Method struct {
	Name string
	// Arity is the maximum number of positional params; trailing params past MinArity are optional.
	Arity    int
	MinArity int
	call     func(ctx context.Context, params []json.RawMessage) (any, error)
}

// Methods builds the capability table served for svc, keyed by method name.
func Methods(svc Service) map[string]Method {
	methods := []Method{
		{Name: "getAddressesSummary", Arity: 1, MinArity: 1, call: func(ctx context.Context, p []json.RawMessage) (any, error) {
			addresses, err := stringsParam(p, 0, "addresses")
			if err != nil {
				return nil, err
			}
			return svc.GetAddressesSummary(ctx, addresses)
		}},
		{Name: "getAddressesTransactions", Arity: 2, MinArity: 1, call: func(ctx context.Context, p []json.RawMessage) (any, error) {
			addresses, err := stringsParam(p, 0, "addresses")
			if err != nil {
				return nil, err
			}
			var fromHeight uint64
			if len(p) > 1 {
				if err := decodeParam(p[1], "fromHeight", &fromHeight); err != nil {
					return nil, err
				}
			}
			return svc.GetAddressesTransactions(ctx, addresses, fromHeight)
		}},
		{Name: "getAddressesUnspents", Arity: 1, MinArity: 1, call: func(ctx context.Context, p []json.RawMessage) (any, error) {
			addresses, err := stringsParam(p, 0, "addresses")
			if err != nil {
				return nil, err
			}
			return svc.GetAddressesUnspents(ctx, addresses)
		}},
		{Name: "getTransactions", Arity: 1, MinArity: 1, call: func(ctx context.Context, p []json.RawMessage) (any, error) {
			txids, err := stringsParam(p, 0, "txids")
			if err != nil {
				return nil, err
			}
			return svc.GetTransactions(ctx, txids)
		}},
		{Name: "getTransactionsSummary", Arity: 1, MinArity: 1, call: func(ctx context.Context, p []json.RawMessage) (any, error) {
			txids, err := stringsParam(p, 0, "txids")
			if err != nil {
				return nil, err
			}
			return svc.GetTransactionsSummary(ctx, txids)
		}},
		{Name: "getUnconfirmedTransactions", call: func(ctx context.Context, _ []json.RawMessage) (any, error) {
			return svc.GetUnconfirmedTransactions(ctx)
		}},
		{Name: "propagateTransactions", Arity: 1, MinArity: 1, call: func(ctx context.Context, p []json.RawMessage) (any, error) {
			encoded, err := stringsParam(p, 0, "rawTxs")
			if err != nil {
				return nil, err
			}
			rawTxs := make([][]byte, len(encoded))
			for i, s := range encoded {
				if rawTxs[i], err = hex.DecodeString(s); err != nil {
					return nil, newError(CodeInvalidParams, "rawTxs[%d] is not hex: %v", i, err)
				}
			}
			return svc.PropagateTransactions(ctx, rawTxs)
		}},
		{Name: "getBlocks", Arity: 1, MinArity: 1, call: func(ctx context.Context, p []json.RawMessage) (any, error) {
			hashes, err := stringsParam(p, 0, "hashes")
			if err != nil {
				return nil, err
			}
			return svc.GetBlocks(ctx, hashes)
		}},
		{Name: "getBlocksSummary", Arity: 1, MinArity: 1, call: func(ctx context.Context, p []json.RawMessage) (any, error) {
			hashes, err := stringsParam(p, 0, "hashes")
			if err != nil {
				return nil, err
			}
			return svc.GetBlocksSummary(ctx, hashes)
		}},
		{Name: "getLatestBlocks", call: func(ctx context.Context, _ []json.RawMessage) (any, error) {
			return svc.GetLatestBlocks(ctx)
		}},
		{Name: "propagateBlock", Arity: 1, call: func(ctx context.Context, p []json.RawMessage) (any, error) {
			// the block is handed over as sent; block submission is not supported
			var rawBlock []byte
			if len(p) > 0 {
				rawBlock = p[0]
			}
			return svc.PropagateBlock(ctx, rawBlock)
		}},
	}

	table := make(map[string]Method, len(methods))
	for _, m := range methods {
		table[m.Name] = m
	}
	return table
}

// MethodNames lists the names of table in lexical order.
func MethodNames(table map[string]Method) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func stringsParam(params []json.RawMessage, i int, name string) ([]string, error) {
	var values []string
	if err := decodeParam(params[i], name, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func decodeParam(raw json.RawMessage, name string, dst any) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return newError(CodeInvalidParams, "invalid %s: %v", name, err)
	}
	return nil
}

func (m Method) checkArity(params []json.RawMessage) *Error {
	if len(params) < m.MinArity || len(params) > m.Arity {
		if m.MinArity == m.Arity {
			return newError(CodeInvalidParams, "%s expects %d params, got %d", m.Name, m.Arity, len(params))
		}
		return newError(CodeInvalidParams, "%s expects %d to %d params, got %d", m.Name, m.MinArity, m.Arity, len(params))
	}
	return nil
}

func (m Method) String() string {
	return fmt.Sprintf("%s/%d", m.Name, m.Arity)
}
