package retry_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraerrors "github.com/punnatorn6420/Nokair-Platform/infrastructure/errors"
	"github.com/punnatorn6420/Nokair-Platform/infrastructure/retry"
)

var fast = retry.Config{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond}

func TestTransient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "server error", err: &infraerrors.HTTPError{StatusCode: http.StatusBadGateway}, want: true},
		{name: "not found", err: &infraerrors.HTTPError{StatusCode: http.StatusNotFound}, want: false},
		{name: "network", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "plain", err: errors.New("bad json"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, retry.Transient(tt.err))
		})
	}
}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	t.Parallel()

	calls := 0
	err := retry.Do(context.Background(), fast, func(context.Context) error {
		calls++
		if calls < 3 {
			return &infraerrors.HTTPError{StatusCode: http.StatusServiceUnavailable}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_StopsOnPermanentError(t *testing.T) {
	t.Parallel()

	calls := 0
	err := retry.Do(context.Background(), fast, func(context.Context) error {
		calls++
		return &infraerrors.HTTPError{StatusCode: http.StatusNotFound}
	})

	assert.True(t, infraerrors.IsNotFound(err))
	assert.Equal(t, 1, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	t.Parallel()

	calls := 0
	err := retry.Do(context.Background(), fast, func(context.Context) error {
		calls++
		return &infraerrors.HTTPError{StatusCode: http.StatusInternalServerError}
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	code, ok := infraerrors.StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, 3, calls)
}

func TestDo_StopsWhenContextDone(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cfg := retry.Config{MaxAttempts: 5, InitialDelay: time.Hour}

	calls := 0
	err := retry.Do(ctx, cfg, func(context.Context) error {
		calls++
		cancel()
		return &infraerrors.HTTPError{StatusCode: http.StatusBadGateway}
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
