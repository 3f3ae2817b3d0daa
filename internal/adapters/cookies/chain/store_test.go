package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/feedkeeper/internal/domain"
	portmocks "github.com/bnema/feedkeeper/internal/ports/mocks"
)

func TestNewStoreRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStore(nil, portmocks.NewMockCookieStore(t))
	require.Error(t, err)

	_, err = NewStore(portmocks.NewMockCookieStore(t), nil)
	require.Error(t, err)
}

func TestStoreLoadUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCookieStore(t)
	fallback := portmocks.NewMockCookieStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	cookies := []domain.Cookie{{Name: "sid", Value: "from-primary"}}
	primary.EXPECT().Load(mock.Anything).Return(cookies, nil).Once()

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cookies, loaded)
}

func TestStoreLoadFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCookieStore(t)
	fallback := portmocks.NewMockCookieStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	cookies := []domain.Cookie{{Name: "sid", Value: "from-fallback"}}
	primary.EXPECT().Load(mock.Anything).Return(nil, errors.New("state unavailable")).Once()
	fallback.EXPECT().Load(mock.Anything).Return(cookies, nil).Once()

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cookies, loaded)
}

func TestStoreLoadKeepsNoStoredCookiesWhenBothBackendsAreEmpty(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCookieStore(t)
	fallback := portmocks.NewMockCookieStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Load(mock.Anything).Return(nil, domain.ErrNoStoredCookies).Once()
	fallback.EXPECT().Load(mock.Anything).Return(nil, domain.ErrNoStoredCookies).Once()

	_, err = store.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrNoStoredCookies)
}

func TestStoreLoadReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCookieStore(t)
	fallback := portmocks.NewMockCookieStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Load(mock.Anything).Return(nil, errors.New("state failed")).Once()
	fallback.EXPECT().Load(mock.Anything).Return(nil, errors.New("file failed")).Once()

	_, err = store.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary backend")
	assert.ErrorContains(t, err, "fallback backend")
	assert.ErrorContains(t, err, "state failed")
	assert.ErrorContains(t, err, "file failed")
}

func TestStoreLoadSkipsFallbackOnCancellation(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCookieStore(t)
	fallback := portmocks.NewMockCookieStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	primary.EXPECT().Load(mock.Anything).Return(nil, context.Canceled).Once()

	_, err = store.Load(context.Background())
	require.ErrorIs(t, err, context.Canceled)
}

func TestStoreSaveFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCookieStore(t)
	fallback := portmocks.NewMockCookieStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	cookies := []domain.Cookie{{Name: "sid", Value: "tok-1"}}
	primary.EXPECT().Save(mock.Anything, cookies).Return(errors.New("state failed")).Once()
	fallback.EXPECT().Save(mock.Anything, cookies).Return(nil).Once()

	require.NoError(t, store.Save(context.Background(), cookies))
}

func TestStoreSaveDoesNotCallFallbackWhenPrimarySucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockCookieStore(t)
	fallback := portmocks.NewMockCookieStore(t)
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	cookies := []domain.Cookie{{Name: "sid", Value: "tok-1"}}
	primary.EXPECT().Save(mock.Anything, cookies).Return(nil).Once()

	require.NoError(t, store.Save(context.Background(), cookies))
}
