package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftLabelIsRest(t *testing.T) {
	assert.True(t, ShiftOff.IsRest())
	assert.True(t, ShiftCompOff.IsRest())
	assert.True(t, ShiftOffWork.IsRest())

	assert.False(t, ShiftMorningN.IsRest())
	assert.False(t, ShiftCNarre.IsRest())
	assert.False(t, ShiftQuakeDrill.IsRest())
}

func TestShiftLabelIsValid(t *testing.T) {
	for _, label := range ShiftLabels {
		assert.True(t, label.IsValid(), string(label))
	}

	assert.False(t, ShiftLabel("早番").IsValid())
	assert.False(t, ShiftLabel("").IsValid())
}
