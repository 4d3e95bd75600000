package schedule

import (
	"testing"

	"github.com/staffsync-dev/staffsync/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWrapsLegacyShift(t *testing.T) {
	roster := domain.Roster{
		{
			ID:   "member-0",
			Name: "佐藤 健一",
			Schedules: map[string]domain.ScheduleEntry{
				"2025-06-02": {Date: "2025-06-02", LegacyShift: domain.ShiftMorningN, Note: "取材A"},
				"2025-06-03": {Date: "2025-06-03", Shifts: []domain.ShiftLabel{domain.ShiftCNarre}},
			},
		},
	}

	normalized := Normalize(roster)

	require.Len(t, normalized, 1)
	migrated := normalized[0].Schedules["2025-06-02"]
	assert.Equal(t, []domain.ShiftLabel{domain.ShiftMorningN}, migrated.Shifts)
	assert.Empty(t, migrated.LegacyShift)
	assert.Equal(t, "取材A", migrated.Note)

	// 現行フォーマットのエントリはそのまま
	assert.Equal(t, []domain.ShiftLabel{domain.ShiftCNarre}, normalized[0].Schedules["2025-06-03"].Shifts)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	roster := domain.Roster{
		{
			ID: "member-0",
			Schedules: map[string]domain.ScheduleEntry{
				"2025-06-02": {Date: "2025-06-02", LegacyShift: domain.ShiftOff},
				"2025-06-03": {Date: "2025-06-03", Shifts: []domain.ShiftLabel{domain.ShiftNightN}, Note: "13:00 会議"},
			},
		},
	}

	once := Normalize(roster)
	twice := Normalize(once)

	assert.Equal(t, once, twice)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	roster := domain.Roster{
		{
			ID: "member-0",
			Schedules: map[string]domain.ScheduleEntry{
				"2025-06-02": {Date: "2025-06-02", LegacyShift: domain.ShiftOff},
			},
		},
	}

	Normalize(roster)

	entry := roster[0].Schedules["2025-06-02"]
	assert.Equal(t, domain.ShiftOff, entry.LegacyShift)
	assert.Empty(t, entry.Shifts)
}
