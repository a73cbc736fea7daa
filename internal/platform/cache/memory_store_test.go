package cache_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/notion_quote_viewer/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type MemoryStoreTestSuite struct {
	suite.Suite
	clock *fakeClock
	store *cache.MemoryStore
	ctx   context.Context
}

func (s *MemoryStoreTestSuite) SetupTest() {
	s.clock = &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	s.store = cache.NewMemoryStore(cache.WithClock(s.clock.Now))
	s.ctx = context.Background()
}

func (s *MemoryStoreTestSuite) TestExpiryWindow() {
	s.Require().NoError(s.store.Set(s.ctx, "invoices:all", []byte("v1"), 60*time.Second, "invoices"))

	s.clock.Advance(59 * time.Second)
	v, ok, err := s.store.Get(s.ctx, "invoices:all")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal([]byte("v1"), v)

	s.clock.Advance(2 * time.Second)
	_, ok, err = s.store.Get(s.ctx, "invoices:all")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *MemoryStoreTestSuite) TestSetReplacesWholeEntry() {
	s.Require().NoError(s.store.Set(s.ctx, "k", []byte("old"), time.Minute, "invoices"))
	s.clock.Advance(50 * time.Second)
	s.Require().NoError(s.store.Set(s.ctx, "k", []byte("new"), time.Minute, "invoices"))

	s.clock.Advance(30 * time.Second)
	v, ok, _ := s.store.Get(s.ctx, "k")
	s.True(ok)
	s.Equal([]byte("new"), v)
}

func (s *MemoryStoreTestSuite) TestInvalidateTag() {
	s.Require().NoError(s.store.Set(s.ctx, "invoices:all", []byte("a"), time.Minute, "invoices"))
	s.Require().NoError(s.store.Set(s.ctx, "invoices:pending", []byte("b"), time.Minute, "invoices"))
	s.Require().NoError(s.store.Set(s.ctx, "other", []byte("c"), time.Minute, "quotes"))

	s.Require().NoError(s.store.InvalidateTag(s.ctx, "invoices"))

	_, ok, _ := s.store.Get(s.ctx, "invoices:all")
	s.False(ok)
	_, ok, _ = s.store.Get(s.ctx, "invoices:pending")
	s.False(ok)
	_, ok, _ = s.store.Get(s.ctx, "other")
	s.True(ok)
}

func (s *MemoryStoreTestSuite) TestInvalidateUnknownTag() {
	s.NoError(s.store.InvalidateTag(s.ctx, "nothing"))
}

func (s *MemoryStoreTestSuite) TestRetaggingMovesKey() {
	s.Require().NoError(s.store.Set(s.ctx, "k", []byte("a"), time.Minute, "t1"))
	s.Require().NoError(s.store.Set(s.ctx, "k", []byte("b"), time.Minute, "t2"))

	s.Require().NoError(s.store.InvalidateTag(s.ctx, "t1"))
	_, ok, _ := s.store.Get(s.ctx, "k")
	s.True(ok)

	s.Require().NoError(s.store.InvalidateTag(s.ctx, "t2"))
	_, ok, _ = s.store.Get(s.ctx, "k")
	s.False(ok)
}

func TestMemoryStoreTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreTestSuite))
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := cache.NewMemoryStore()
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%3 == 0 {
				assert.NoError(t, store.InvalidateTag(ctx, "invoices"))
				return
			}
			assert.NoError(t, store.Set(ctx, "k", []byte{byte(i)}, time.Minute, "invoices"))
			_, _, err := store.Get(ctx, "k")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	require.NoError(t, store.Set(ctx, "k", []byte("final"), time.Minute))
	v, ok, _ := store.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, []byte("final"), v)
}
