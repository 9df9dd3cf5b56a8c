package service

import (
	"context"
	"testing"

	"helphub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupService_SecondSignupConflicts(t *testing.T) {
	t.Parallel()
	signups := newMemSignupRepo()
	svc := NewSignupService(signups, noopOpportunityRepo())
	ctx := context.Background()

	first, err := svc.SignUp(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, models.SignupStatusPending, first.Status)

	_, err = svc.SignUp(ctx, 1, 10)
	assertAppErrorCode(t, err, models.CodeConflict)
	assert.Equal(t, "Already signed up for this opportunity", err.Error())

	mine, err := svc.ListMine(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	// a different user can still sign up
	_, err = svc.SignUp(ctx, 2, 10)
	require.NoError(t, err)
}

func TestSignupService_UnknownOpportunity(t *testing.T) {
	t.Parallel()
	opps := noopOpportunityRepo()
	opps.getByIDFn = func(context.Context, uint) (*models.Opportunity, error) {
		return nil, models.NewNotFoundError("Opportunity")
	}
	signups := newMemSignupRepo()

	_, err := NewSignupService(signups, opps).SignUp(context.Background(), 1, 404)
	assertAppErrorCode(t, err, models.CodeNotFound)
	assert.Empty(t, signups.rows)
}

func TestSignupService_MissingOpportunityID(t *testing.T) {
	t.Parallel()
	_, err := NewSignupService(newMemSignupRepo(), noopOpportunityRepo()).SignUp(context.Background(), 1, 0)
	assertValidationError(t, err)
}

func TestSignupService_CancelOwnership(t *testing.T) {
	t.Parallel()
	signups := newMemSignupRepo()
	svc := NewSignupService(signups, noopOpportunityRepo())
	ctx := context.Background()

	signup, err := svc.SignUp(ctx, 1, 10)
	require.NoError(t, err)

	err = svc.Cancel(ctx, 2, signup.ID)
	assertAppErrorCode(t, err, models.CodeNotFound)
	assert.Len(t, signups.rows, 1)

	require.NoError(t, svc.Cancel(ctx, 1, signup.ID))
	assert.Empty(t, signups.rows)
}
