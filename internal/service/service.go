package service

import (
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sideshiftai/basepulse-ido/registry"
	"github.com/sideshiftai/basepulse-ido/state"
)

// Service is the single writer over the ledger store. Every Execute builds
// a fresh transaction context, runs the operation against buffered writes,
// and commits only when the operation succeeds. Failed operations leave the
// store untouched.
type Service struct {
	mu      sync.Mutex
	store   state.Store
	sink    state.EventSink
	factory *registry.Factory
	log     *zap.Logger
}

func New(store state.Store, sink state.EventSink, log *zap.Logger) *Service {
	return &Service{
		store:   store,
		sink:    sink,
		factory: registry.NewFactory(),
		log:     log,
	}
}

func (s *Service) Factory() *registry.Factory {
	return s.factory
}

func (s *Service) newContext(sender string, gasPrice *big.Int, txID string) *state.Context {
	opts := []state.Option{
		state.WithSender(sender),
		state.WithTimestamp(uint64(time.Now().Unix())),
		state.WithTxID(txID),
	}
	if gasPrice != nil {
		opts = append(opts, state.WithGasPrice(gasPrice))
	}
	if s.sink != nil {
		opts = append(opts, state.WithEventSink(s.sink))
	}
	return state.NewContext(s.store, opts...)
}

// Execute runs a mutating operation and commits its write set. Returns the
// transaction id and the events published on commit.
func (s *Service) Execute(sender string, gasPrice *big.Int, fn func(ctx state.TransactionContext) error) (string, []state.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txID := uuid.NewString()
	ctx := s.newContext(sender, gasPrice, txID)

	if err := fn(ctx); err != nil {
		s.log.Debug("transaction rejected", zap.String("txId", txID), zap.Error(err))
		return txID, nil, err
	}
	if err := ctx.Commit(); err != nil {
		s.log.Error("commit failed", zap.String("txId", txID), zap.Error(err))
		return txID, nil, err
	}

	s.log.Info("transaction committed", zap.String("txId", txID), zap.String("sender", sender))
	return txID, ctx.Events(), nil
}

// Query runs a read-only operation. Nothing is committed.
func (s *Service) Query(sender string, fn func(ctx state.TransactionContext) error) error {
	ctx := s.newContext(sender, nil, uuid.NewString())
	return fn(ctx)
}
