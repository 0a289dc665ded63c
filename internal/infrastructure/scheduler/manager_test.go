package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estately/estately/internal/shared/logger"
)

func TestSchedulerManager_RunsStoreSyncImmediately(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	ran := make(chan struct{}, 1)
	job := BatchJobFunc(func(context.Context) (int, error) {
		select {
		case ran <- struct{}{}:
		default:
		}
		return 2, nil
	})

	require.NoError(t, m.RegisterStoreSyncJob(time.Hour, job))
	require.Len(t, m.Jobs(), 1)
	assert.Equal(t, "store-status-sync", m.Jobs()[0].Name())

	m.Start()
	m.Start()
	assert.True(t, m.IsStarted())

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("store sync job did not run")
	}

	require.NoError(t, m.Stop())
	assert.False(t, m.IsStarted())
	require.NoError(t, m.Stop())
}

func TestSchedulerManager_JobErrorIsLogged(t *testing.T) {
	m, err := NewSchedulerManager(logger.NewNopLogger())
	require.NoError(t, err)

	done := make(chan struct{})
	job := BatchJobFunc(func(context.Context) (int, error) {
		defer close(done)
		return 0, errors.New("db down")
	})
	require.NoError(t, m.RegisterStoreSyncJob(time.Hour, job))

	m.Start()
	defer func() { _ = m.Stop() }()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("job did not run")
	}
}
