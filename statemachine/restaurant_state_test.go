package statemachine

import (
	"testing"

	"qr-menu-api/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	// Allowed
	assert.NoError(t, CanTransition(models.StatusPending, models.StatusActive, "admin"))
	assert.NoError(t, CanTransition(models.StatusPending, models.StatusActive, "system"))
	assert.NoError(t, CanTransition(models.StatusActive, models.StatusDisabled, "admin"))
	assert.NoError(t, CanTransition(models.StatusDisabled, models.StatusActive, "admin"))

	// Rejected
	assert.Error(t, CanTransition(models.StatusPending, models.StatusDisabled, "admin"))
	assert.Error(t, CanTransition(models.StatusActive, models.StatusPending, "admin"))
	assert.Error(t, CanTransition(models.StatusDisabled, models.StatusPending, "admin"))
	// Re-enable is admin-only
	assert.Error(t, CanTransition(models.StatusDisabled, models.StatusActive, "system"))
	// Unknown actor
	assert.Error(t, CanTransition(models.StatusPending, models.StatusActive, "owner"))
}

func TestValidTransitionsFrom(t *testing.T) {
	assert.Equal(t, []models.Status{models.StatusActive}, ValidTransitionsFrom(models.StatusPending))
	assert.Equal(t, []models.Status{models.StatusDisabled}, ValidTransitionsFrom(models.StatusActive))
	assert.Equal(t, []models.Status{models.StatusActive}, ValidTransitionsFrom(models.StatusDisabled))
}
