package cache

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/wareql"
	"github.com/zoobzio/wareql/warehouse"
)

type fakeQuerier struct {
	calls  int
	result *warehouse.ResultSet
	err    error
}

func (f *fakeQuerier) Query(_ context.Context, _ *wareql.QueryResult) (*warehouse.ResultSet, error) {
	f.calls++
	return f.result, f.err
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("store down")
}

func (failingStore) Set(context.Context, string, []byte) error {
	return errors.New("store down")
}

func (failingStore) Delete(context.Context, string) error {
	return errors.New("store down")
}

func sampleResult() *warehouse.ResultSet {
	return &warehouse.ResultSet{
		Columns: []string{"station_id", "call_sign", "power", "licensed", "granted"},
		Rows: [][]any{
			{int64(1), "KXAN", 12.5, true, time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)},
			{int64(2), "WFAA", nil, false, time.Date(2021, 7, 9, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func newRedisStore(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedis(rdb, "", time.Minute), mr
}

func TestKey(t *testing.T) {
	q := &wareql.QueryResult{SQL: "SELECT * FROM t WHERE a = $1", Args: []any{int64(1)}}

	assert.Equal(t, Key("pg", q), Key("pg", q))
	assert.Len(t, Key("pg", q), 32)
	assert.NotEqual(t, Key("pg", q), Key("duckdb", q))
	assert.NotEqual(t, Key("pg", q), Key("pg", &wareql.QueryResult{SQL: q.SQL, Args: []any{"1"}}))
	assert.NotEqual(t, Key("pg", q), Key("pg", &wareql.QueryResult{SQL: q.SQL, Args: []any{int64(2)}}))
	assert.NotEqual(t, Key("pg", q), Key("pg", &wareql.QueryResult{SQL: q.SQL}))
}

func TestCodec_RoundTrip(t *testing.T) {
	c, err := newCodec()
	require.NoError(t, err)
	defer c.close()

	rs := sampleResult()
	data, err := c.encode(rs)
	require.NoError(t, err)

	got, err := c.decode(data)
	require.NoError(t, err)
	assert.Equal(t, rs.Columns, got.Columns)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, int64(1), got.Rows[0][0])
	assert.Equal(t, "KXAN", got.Rows[0][1])
	assert.Equal(t, 12.5, got.Rows[0][2])
	assert.Equal(t, true, got.Rows[0][3])
	assert.Nil(t, got.Rows[1][2])

	granted, ok := got.Rows[1][4].(time.Time)
	require.True(t, ok)
	assert.True(t, granted.Equal(time.Date(2021, 7, 9, 0, 0, 0, 0, time.UTC)))
}

func TestCodec_BigInt(t *testing.T) {
	c, err := newCodec()
	require.NoError(t, err)
	defer c.close()

	huge, _ := new(big.Int).SetString("170141183460469231731687303715884105727", 10)
	data, err := c.encode(&warehouse.ResultSet{Columns: []string{"n"}, Rows: [][]any{{huge}}})
	require.NoError(t, err)

	got, err := c.decode(data)
	require.NoError(t, err)
	n, ok := got.Rows[0][0].(*big.Int)
	require.True(t, ok)
	assert.Equal(t, 0, huge.Cmp(n))
}

func TestCodec_RejectsGarbage(t *testing.T) {
	c, err := newCodec()
	require.NoError(t, err)
	defer c.close()

	_, err = c.decode([]byte("not zstd"))
	assert.Error(t, err)
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	value := []byte("v1")
	require.NoError(t, m.Set(ctx, "k", value))
	value[0] = 'x'

	got, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v1"), got)
	assert.Equal(t, 1, m.Len())

	require.NoError(t, m.Delete(ctx, "k"))
	require.NoError(t, m.Delete(ctx, "missing"))
	assert.Equal(t, 0, m.Len())
}

func TestRedis(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "k", []byte("v1")))
	assert.True(t, mr.Exists(DefaultPrefix+"k"))
	assert.Equal(t, time.Minute, mr.TTL(DefaultPrefix+"k"))

	got, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v1"), got)

	mr.FastForward(2 * time.Minute)
	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "k", []byte("v2")))
	require.NoError(t, store.Delete(ctx, "k"))
	assert.False(t, mr.Exists(DefaultPrefix+"k"))
}

func TestDialRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	store, err := DialRedis(context.Background(), RedisConfig{Addr: mr.Addr(), Prefix: "test:"})
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set(context.Background(), "k", []byte("v")))
	assert.True(t, mr.Exists("test:k"))
}

func TestDialRedis_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := DialRedis(context.Background(), RedisConfig{Addr: addr})
	assert.Error(t, err)
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, NewMemory(), "", zerolog.Nop())
	assert.Error(t, err)

	_, err = New(&fakeQuerier{}, nil, "", zerolog.Nop())
	assert.Error(t, err)
}

func TestCached_HitAndMiss(t *testing.T) {
	ctx := context.Background()
	querier := &fakeQuerier{result: sampleResult()}
	store, _ := newRedisStore(t)

	cached, err := New(querier, store, "duckdb", zerolog.Nop())
	require.NoError(t, err)
	defer cached.Close()

	q := &wareql.QueryResult{SQL: "SELECT station_id FROM stations"}

	first, err := cached.Query(ctx, q, false)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Len())

	second, err := cached.Query(ctx, q, false)
	require.NoError(t, err)
	assert.Equal(t, first.Columns, second.Columns)
	assert.Equal(t, 2, second.Len())

	assert.Equal(t, 1, querier.calls)
	assert.Equal(t, int64(1), cached.Hits())
	assert.Equal(t, int64(1), cached.Misses())
}

func TestCached_Refresh(t *testing.T) {
	ctx := context.Background()
	querier := &fakeQuerier{result: sampleResult()}
	cached, err := New(querier, NewMemory(), "duckdb", zerolog.Nop())
	require.NoError(t, err)
	defer cached.Close()

	q := &wareql.QueryResult{SQL: "SELECT 1"}
	_, err = cached.Query(ctx, q, false)
	require.NoError(t, err)

	querier.result = &warehouse.ResultSet{Columns: []string{"x"}, Rows: [][]any{{int64(9)}}}
	rs, err := cached.Query(ctx, q, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, rs.Columns)

	rs, err = cached.Query(ctx, q, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, rs.Columns)
	assert.Equal(t, 2, querier.calls)
}

func TestCached_Invalidate(t *testing.T) {
	ctx := context.Background()
	querier := &fakeQuerier{result: sampleResult()}
	cached, err := New(querier, NewMemory(), "", zerolog.Nop())
	require.NoError(t, err)
	defer cached.Close()

	q := &wareql.QueryResult{SQL: "SELECT 1"}
	_, err = cached.Query(ctx, q, false)
	require.NoError(t, err)
	require.NoError(t, cached.Invalidate(ctx, q))
	_, err = cached.Query(ctx, q, false)
	require.NoError(t, err)
	assert.Equal(t, 2, querier.calls)
}

func TestCached_StoreFailureFallsThrough(t *testing.T) {
	querier := &fakeQuerier{result: sampleResult()}
	cached, err := New(querier, failingStore{}, "", zerolog.Nop())
	require.NoError(t, err)
	defer cached.Close()

	rs, err := cached.Query(context.Background(), &wareql.QueryResult{SQL: "SELECT 1"}, false)
	require.NoError(t, err)
	assert.Equal(t, 2, rs.Len())
	assert.Equal(t, 1, querier.calls)
}

func TestCached_CorruptEntryIsIgnored(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	querier := &fakeQuerier{result: sampleResult()}
	cached, err := New(querier, store, "ns", zerolog.Nop())
	require.NoError(t, err)
	defer cached.Close()

	q := &wareql.QueryResult{SQL: "SELECT 1"}
	require.NoError(t, store.Set(ctx, Key("ns", q), []byte("garbage")))

	rs, err := cached.Query(ctx, q, false)
	require.NoError(t, err)
	assert.Equal(t, 2, rs.Len())
	assert.Equal(t, 1, querier.calls)
}

func TestCached_QueryErrorNotCached(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	querier := &fakeQuerier{err: errors.New("boom")}
	cached, err := New(querier, store, "", zerolog.Nop())
	require.NoError(t, err)
	defer cached.Close()

	_, err = cached.Query(ctx, &wareql.QueryResult{SQL: "SELECT 1"}, false)
	assert.EqualError(t, err, "boom")
	assert.Equal(t, 0, store.Len())

	_, err = cached.Query(ctx, nil, false)
	assert.Error(t, err)
}
