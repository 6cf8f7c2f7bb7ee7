package repository

import (
	"context"
	"testing"
	"time"

	"github.com/fadilmartias/casting-intake/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndFind(t *testing.T) {
	repo := NewSessionRepository(model.MockCandidate())

	s := repo.CreateSession()
	found, err := repo.FindSessionByID(s.ID.String())

	require.NoError(t, err)
	assert.Same(t, s, found)
	assert.Equal(t, 1, repo.Count())
}

func TestFindSessionByID_Unknown(t *testing.T) {
	repo := NewSessionRepository(model.MockCandidate())

	_, err := repo.FindSessionByID("not-a-uuid")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = repo.FindSessionByID(uuid.NewString())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionsDoNotShareDossier(t *testing.T) {
	repo := NewSessionRepository(model.MockCandidate())
	a := repo.CreateSession()
	b := repo.CreateSession()

	_, err := a.BeginLogin()
	require.NoError(t, err)
	a.CompleteLogin("hi")
	require.NoError(t, a.UpdateFields(map[string]string{"doctorName": "Dr. House"}))

	assert.Empty(t, b.View().Dossier.DoctorName)
}

func TestDeleteSession(t *testing.T) {
	repo := NewSessionRepository(model.MockCandidate())
	s := repo.CreateSession()

	repo.DeleteSession(s.ID)

	_, err := repo.FindSessionByID(s.ID.String())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteIdle(t *testing.T) {
	clock := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	repo := NewSessionRepository(model.MockCandidate())
	repo.now = func() time.Time { return clock }

	old := repo.CreateSession()
	clock = clock.Add(90 * time.Minute)
	fresh := repo.CreateSession()
	clock = clock.Add(45 * time.Minute)

	removed := repo.DeleteIdle(time.Hour)

	assert.Equal(t, 1, removed)
	_, err := repo.FindSessionByID(old.ID.String())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = repo.FindSessionByID(fresh.ID.String())
	assert.NoError(t, err)
}

func TestSweep_StopsOnCancel(t *testing.T) {
	repo := NewSessionRepository(model.MockCandidate())
	ctx, cancel := context.WithCancel(context.Background())

	passes := make(chan int, 10)
	done := make(chan struct{})
	go func() {
		repo.Sweep(ctx, time.Hour, 5*time.Millisecond, func(removed int) {
			select {
			case passes <- removed:
			default:
			}
		})
		close(done)
	}()

	select {
	case <-passes:
	case <-time.After(time.Second):
		t.Fatal("sweep never ran")
	}
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweep did not stop")
	}
}
