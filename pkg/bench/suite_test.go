package bench

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuite_RunsAllRegisteredInSortedOrder(t *testing.T) {
	s := NewSuite()
	s.Register("zeta", Expr(func() any { return 1 }))
	s.Register("alpha", Expr(func() any { return 2 }))

	assert.Equal(t, []string{"alpha", "zeta"}, s.Names())

	cfg := DefaultConfig()
	cfg.Samples = 5
	cfg.BudgetSeconds = 1

	out, err := s.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "zeta")
}

func TestSuite_ReRegisterReplacesWithoutDuplicatingName(t *testing.T) {
	s := NewSuite()
	s.Register("x", Expr(func() any { return 1 }))
	s.Register("x", Expr(func() any { return 2 }))
	assert.Equal(t, []string{"x"}, s.Names())
}

func TestSuite_StopsOnFirstFailure(t *testing.T) {
	s := NewSuite()
	s.Register("a", Expr(func() any { return 1 }))
	s.Register("b", BenchmarkableFunc(func(store *SampleStore, ns, ne int) error {
		return assert.AnError
	}))

	cfg := DefaultConfig()
	cfg.Samples = 2
	cfg.BudgetSeconds = 1
	_, err := s.Run(context.Background(), cfg)
	require.Error(t, err)
}

func TestSuite_RespectsCanceledContext(t *testing.T) {
	s := NewSuite()
	s.Register("a", Expr(func() any { return 1 }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Run(ctx, DefaultConfig())
	require.Error(t, err)
}

func TestSuite_RunIsSequential(t *testing.T) {
	s := NewSuite()
	var order []string
	mk := func(name string) Benchmarkable {
		return BenchmarkableFunc(func(store *SampleStore, ns, ne int) error {
			order = append(order, name)
			return store.Append(1, float64(time.Microsecond), 0, 0, 0)
		})
	}
	s.Register("a", mk("a"))
	s.Register("b", mk("b"))

	cfg := DefaultConfig()
	cfg.Samples = 1
	cfg.BudgetSeconds = 5
	_, err := s.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a", "b", "b"}, order, "Phase A and C each invoke once per entry")
}
