package hosted

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneshotResolvesOnce(t *testing.T) {
	t.Parallel()

	o := newOneshot[int]()
	_, err := o.Result()
	require.ErrorIs(t, err, ErrPending)

	assert.True(t, o.resolve(42, nil))
	assert.False(t, o.resolve(7, nil))
	assert.False(t, o.reject(errors.New("late")))

	select {
	case <-o.Done():
	default:
		t.Fatal("Done is not closed")
	}

	v, err := o.Result()
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = o.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestOneshotReject(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	o := newOneshot[string]()
	assert.True(t, o.reject(boom))

	v, err := o.Result()
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, v)
}

func TestOneshotWaitContext(t *testing.T) {
	t.Parallel()

	o := newOneshot[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := o.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestOneshotWaitAcrossGoroutines(t *testing.T) {
	t.Parallel()

	o := newOneshot[int]()
	go o.resolve(1, nil)

	v, err := o.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}
