package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusBadgeClassKnownStatuses(t *testing.T) {
	assert.Equal(t, "status-pending", StatusBadgeClass("pending"))
	assert.Equal(t, "status-confirmed", StatusBadgeClass("confirmed"))
	assert.Equal(t, "status-completed", StatusBadgeClass("completed"))
	assert.Equal(t, "status-cancelled", StatusBadgeClass("cancelled"))
}

func TestStatusBadgeClassFallsBackToPending(t *testing.T) {
	assert.Equal(t, "status-pending", StatusBadgeClass("rescheduled"))
	assert.Equal(t, "status-pending", StatusBadgeClass(""))
	assert.Equal(t, "status-pending", StatusBadgeClass("Confirmed"))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Pending", StatusLabel("pending"))
	assert.Equal(t, "Confirmed", StatusLabel("confirmed"))
	assert.Equal(t, "", StatusLabel(""))
}
