package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"zambus/internal/db"
	"zambus/internal/domain"
	"zambus/internal/domain/models"
	"zambus/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutatorStopsAtFirstFailingStage(t *testing.T) {
	env, rec := newEnv(t)
	committed := false
	err := env.mutator(operator, 0).Run(context.Background(), Op{
		Module:       "test",
		Action:       "validate",
		FailureTitle: "Nope",
		Validate:     func() error { return domain.Invalid("x", "bad input") },
		Commit: func(*db.State) error {
			committed = true
			return nil
		},
	})
	require.Error(t, err)
	assert.False(t, committed)
	assert.Equal(t, notify.VariantDestructive, rec.last().Variant)
	assert.Equal(t, "Nope", rec.last().Title)
	assert.Equal(t, "bad input", rec.last().Description)
	assert.Equal(t, operator.UserID, rec.last().UserID)
}

func TestMutatorAddressesToastsToActor(t *testing.T) {
	env, rec := newEnv(t)
	err := env.mutator(passenger, 0).Run(context.Background(), Op{
		Module:  "test",
		Action:  "ok",
		Success: func() notify.Toast { return notify.Success("Done", "") },
	})
	require.NoError(t, err)
	assert.Equal(t, passenger.UserID, rec.last().UserID)
	assert.Equal(t, "test", rec.last().RequestID)
}

func TestMutatorRequiresConfirmation(t *testing.T) {
	env, rec := newEnv(t)
	op := Op{Module: "test", Action: "delete", Prompt: "Really?", Commit: func(*db.State) error { return nil }}

	err := env.mutator(operator, 0).Run(context.Background(), op)
	assert.True(t, domain.IsConfirmationRequired(err))
	assert.Equal(t, "Really?", err.Error())
	assert.Zero(t, rec.count())

	op.Confirmed = true
	require.NoError(t, env.mutator(operator, 0).Run(context.Background(), op))
}

func TestMutatorRollsBackFailedCommit(t *testing.T) {
	env, _ := newEnv(t)
	err := env.mutator(operator, 0).Run(context.Background(), Op{
		Module: "test",
		Action: "commit",
		Commit: func(st *db.State) error {
			st.Routes = append(st.Routes, models.Route{ID: 99})
			return domain.ConflictError{Msg: "taken"}
		},
	})
	require.True(t, domain.IsConflict(err))

	require.NoError(t, env.DB.View(func(st *db.State) error {
		assert.Empty(t, st.Routes)
		return nil
	}))
}

func TestMutatorHonoursCancellationDuringLatency(t *testing.T) {
	env, rec := newEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	committed := false
	err := env.mutator(operator, time.Minute).Run(ctx, Op{
		Module: "test",
		Action: "slow",
		Commit: func(*db.State) error {
			committed = true
			return nil
		},
	})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, committed)
	assert.Zero(t, rec.count())
}

func TestMutatorHidesInternalErrors(t *testing.T) {
	env, rec := newEnv(t)
	err := env.mutator(operator, 0).Run(context.Background(), Op{
		Module: "test",
		Action: "boom",
		Commit: func(*db.State) error { return domain.InternalError{Err: errors.New("disk on fire")} },
	})
	require.Error(t, err)
	assert.Equal(t, genericFailure, rec.last().Description)
}
