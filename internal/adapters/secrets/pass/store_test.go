package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutUsesPassInsertUnderNamespace(t *testing.T) {
	t.Parallel()

	called := false
	store := &Store{
		namespace: "feedkeeper",
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			called = true
			assert.Equal(t, context.Background(), ctx)
			assert.Equal(t, []string{"insert", "-m", "-f", "feedkeeper/main/password"}, args)
			assert.Equal(t, "top-secret\n", input)
			return "", "", nil
		},
	}

	err := store.Put(context.Background(), "main/password", "top-secret")
	require.NoError(t, err)
	assert.True(t, called)
}

func TestStoreGetUsesPassShowAndTrimsTrailingNewline(t *testing.T) {
	t.Parallel()

	store := &Store{
		namespace: "feedkeeper",
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"show", "feedkeeper/main/password"}, args)
			assert.Empty(t, input)
			return "top-secret\n", "", nil
		},
	}

	value, err := store.Get(context.Background(), "main/password")
	require.NoError(t, err)
	assert.Equal(t, "top-secret", value)
}

func TestStoreWithoutNamespaceUsesBareKey(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"show", "main/password"}, args)
			return "s\n", "", nil
		},
	}

	_, err := store.Get(context.Background(), "main/password")
	require.NoError(t, err)
}

func TestStoreDeleteUsesPassRemove(t *testing.T) {
	t.Parallel()

	store := &Store{
		namespace: "feedkeeper",
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"rm", "-f", "feedkeeper/main/cookies"}, args)
			assert.Empty(t, input)
			return "", "", nil
		},
	}

	err := store.Delete(context.Background(), "main/cookies")
	require.NoError(t, err)
}

func TestStoreRejectsEmptyKey(t *testing.T) {
	t.Parallel()

	store := NewStore("feedkeeper")

	err := store.Put(context.Background(), "   ", "value")
	require.Error(t, err)
	assert.ErrorContains(t, err, "secret key is empty")
}

func TestStoreGetReturnsClearError(t *testing.T) {
	t.Parallel()

	store := &Store{
		namespace: "feedkeeper",
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "entry not found", errors.New("exit status 1")
		},
	}

	_, err := store.Get(context.Background(), "main/password")
	require.Error(t, err)
	assert.ErrorContains(t, err, "pass get")
	assert.ErrorContains(t, err, "feedkeeper/main/password")
	assert.ErrorContains(t, err, "entry not found")
}
