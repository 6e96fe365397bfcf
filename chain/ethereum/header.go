package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// HeaderSource serves execution headers from the chain behind a Connection.
type HeaderSource struct {
	conn *Connection
}

func NewHeaderSource(conn *Connection) *HeaderSource {
	return &HeaderSource{conn: conn}
}

func (s *HeaderSource) HeaderByNumber(ctx context.Context, number uint64) (*types.Header, error) {
	header, err := s.conn.Client().HeaderByNumber(ctx, new(big.Int).SetUint64(number))
	if err != nil {
		return nil, fmt.Errorf("fetch execution header %d: %w", number, err)
	}
	return header, nil
}

func (s *HeaderSource) HeaderByHash(ctx context.Context, hash common.Hash) (*types.Header, error) {
	return s.conn.HeaderByHash(ctx, hash)
}

func (s *HeaderSource) LatestNumber(ctx context.Context) (uint64, error) {
	number, err := s.conn.Client().BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch latest block number: %w", err)
	}
	return number, nil
}
