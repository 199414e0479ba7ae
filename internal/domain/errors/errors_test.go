package errors

import (
	"testing"

	"bazaar/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrInvalidTierSet.WithDetails("missing premium tier")

	assert.ErrorIs(t, err, ErrInvalidTierSet)
	assert.Equal(t, "missing premium tier", err.Details())
	assert.Equal(t, ErrInvalidTierSet.ErrorCode(), err.ErrorCode())

	// The predefined value itself must stay untouched.
	assert.Empty(t, ErrInvalidTierSet.Details())
}

func TestBaseError_WithDetailsSurvivesWrapping(t *testing.T) {
	err := errors.Wrap(ErrInvalidOrderStatus.WithDetails("shipped"), "update order")

	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrForbidden.WrapMessage("only staff may delete orders")

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestBaseError_DistinctCodesDoNotMatch(t *testing.T) {
	err := ErrOfferNotFound.WithDetails("offer gone")

	assert.NotErrorIs(t, err, ErrOrderNotFound)
	assert.NotErrorIs(t, err, errors.New("offer gone"))
}

func TestBaseError_AppErrorSurface(t *testing.T) {
	var appErr AppError
	err := errors.Wrap(ErrReviewAlreadyExists, "create review")

	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "You have already rated this user.", appErr.Message())
}
