package storage_test

import (
	"context"
	"errors"
	"go-polarity-shooter/internal/storage"
	storagemock "go-polarity-shooter/internal/storage/mock"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestInsert_KeepsTopFiveDescending(t *testing.T) {
	var scores []storage.HighScore
	for _, s := range []int{300, 100, 500, 200, 400, 50} {
		scores = storage.Insert(scores, storage.HighScore{Score: s})
	}

	require.Len(t, scores, storage.MaxHighScores)
	got := make([]int, 0, len(scores))
	for _, s := range scores {
		got = append(got, s.Score)
	}
	assert.Equal(t, []int{500, 400, 300, 200, 100}, got)
}

func TestInsert_TiesKeepEarlierEntryFirst(t *testing.T) {
	scores := []storage.HighScore{{Score: 100, MaxChain: 1}}
	scores = storage.Insert(scores, storage.HighScore{Score: 100, MaxChain: 2})

	assert.Equal(t, 1, scores[0].MaxChain)
	assert.Equal(t, 2, scores[1].MaxChain)
}

func TestInsert_DoesNotMutateInput(t *testing.T) {
	scores := []storage.HighScore{{Score: 10}}
	_ = storage.Insert(scores, storage.HighScore{Score: 20})
	assert.Equal(t, 10, scores[0].Score)
}

func TestRecord_WithMockStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storagemock.NewMockStore(ctrl)
	ctx := context.Background()

	store.EXPECT().Load(ctx).Return([]storage.HighScore{{Score: 100, MaxChain: 1}}, nil)
	store.EXPECT().Save(ctx, []storage.HighScore{{Score: 250, MaxChain: 3}, {Score: 100, MaxChain: 1}}).Return(nil)

	scores, err := storage.Record(ctx, store, storage.HighScore{Score: 250, MaxChain: 3})
	require.NoError(t, err)
	assert.Len(t, scores, 2)
}

func TestRecord_LoadErrorIsWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := storagemock.NewMockStore(ctrl)
	boom := errors.New("boom")

	store.EXPECT().Load(gomock.Any()).Return(nil, boom)

	_, err := storage.Record(context.Background(), store, storage.HighScore{Score: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestOpen_UnknownKind(t *testing.T) {
	_, err := storage.Open(storage.Options{Kind: "floppy"})
	assert.Error(t, err)
}

// StoreSuite прогоняет один набор проверок на всех реализациях.
type StoreSuite struct {
	suite.Suite
	newStore func() storage.Store
	store    storage.Store
}

func (s *StoreSuite) SetupTest() {
	s.store = s.newStore()
}

func (s *StoreSuite) TearDownTest() {
	_ = s.store.Close()
}

func (s *StoreSuite) TestEmptyLoad() {
	scores, err := s.store.Load(context.Background())
	s.Require().NoError(err)
	s.Empty(scores)
}

func (s *StoreSuite) TestSaveThenLoad() {
	ctx := context.Background()
	want := []storage.HighScore{{Score: 900, MaxChain: 4}, {Score: 120, MaxChain: 0}}

	s.Require().NoError(s.store.Save(ctx, want))
	got, err := s.store.Load(ctx)
	s.Require().NoError(err)
	s.Equal(want, got)
}

func (s *StoreSuite) TestClosedStore() {
	s.Require().NoError(s.store.Close())

	_, err := s.store.Load(context.Background())
	s.ErrorIs(err, storage.ErrStoreClosed)
	s.ErrorIs(s.store.Save(context.Background(), nil), storage.ErrStoreClosed)
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func() storage.Store {
		return storage.NewMemoryStore()
	}})
}

func TestBadgerStore(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func() storage.Store {
		store, err := storage.NewBadgerStore(t.TempDir())
		require.NoError(t, err)
		return store
	}})
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	suite.Run(t, &StoreSuite{newStore: func() storage.Store {
		mr.FlushAll()
		store, err := storage.NewRedisStore(mr.Addr())
		require.NoError(t, err)
		return store
	}})
}

func TestRedisStore_PayloadFormat(t *testing.T) {
	mr := miniredis.RunT(t)
	store, err := storage.NewRedisStore(mr.Addr())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(context.Background(), []storage.HighScore{{Score: 42, MaxChain: 2}}))

	raw, err := mr.Get(storage.DefaultRedisKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"score":42,"maxChain":2}]`, raw)
}
