package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"bakery/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRelayer struct {
	mock.Mock
}

func (m *mockRelayer) Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestOutboxRelayJob_RunOnce(t *testing.T) {
	cmd, err := commands.NewRelayOutboxCommand(25)
	require.NoError(t, err)

	t.Run("reports published count", func(t *testing.T) {
		var buf bytes.Buffer
		relayer := new(mockRelayer)
		relayer.On("Handle", mock.Anything, cmd).Return(3, nil).Once()

		job := NewOutboxRelayJob(relayer, "", 25, testLogger(&buf))

		assert.Equal(t, 3, job.RunOnce(t.Context(), cmd))
		assert.Contains(t, buf.String(), "published=3")
		relayer.AssertExpectations(t)
	})

	t.Run("logs failures and keeps partial count", func(t *testing.T) {
		var buf bytes.Buffer
		relayer := new(mockRelayer)
		relayer.On("Handle", mock.Anything, cmd).Return(1, errors.New("broker unavailable")).Once()

		job := NewOutboxRelayJob(relayer, "", 25, testLogger(&buf))

		assert.Equal(t, 1, job.RunOnce(t.Context(), cmd))
		assert.Contains(t, buf.String(), "Outbox relay failed")
		assert.Contains(t, buf.String(), "broker unavailable")
	})
}

func TestOutboxRelayJob_Start(t *testing.T) {
	t.Run("defaults the schedule", func(t *testing.T) {
		job := NewOutboxRelayJob(new(mockRelayer), "", 10, slog.New(slog.DiscardHandler))
		assert.Equal(t, DefaultOutboxRelaySchedule, job.schedule)
	})

	t.Run("rejects a bad schedule", func(t *testing.T) {
		job := NewOutboxRelayJob(new(mockRelayer), "every now and then", 10, slog.New(slog.DiscardHandler))
		assert.Error(t, job.Start())
	})

	t.Run("rejects a non-positive batch", func(t *testing.T) {
		job := NewOutboxRelayJob(new(mockRelayer), DefaultOutboxRelaySchedule, 0, slog.New(slog.DiscardHandler))
		assert.Error(t, job.Start())
	})
}

func TestJobManager_StartAndStop(t *testing.T) {
	relayer := new(mockRelayer)
	relayer.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Maybe()

	jm := NewJobManager(relayer, "@every 1h", 10, slog.New(slog.DiscardHandler))
	require.NoError(t, jm.StartAll())
	jm.StopAll()

	bad := NewJobManager(relayer, "not a schedule", 10, slog.New(slog.DiscardHandler))
	err := bad.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outbox relay job")
}
