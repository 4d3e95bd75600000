package seed

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/staffsync-dev/staffsync/backend/internal/domain"
	"github.com/staffsync-dev/staffsync/backend/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDemoRoster(t *testing.T) {
	roster := GenerateDemoRoster(2025, time.June)

	require.Len(t, roster, 30)
	assert.Equal(t, "member-0", roster[0].ID)
	assert.Equal(t, "佐藤 健一", roster[0].Name)
	assert.Equal(t, "部長", roster[0].Role)

	for _, member := range roster {
		// 6 月は 30 日
		assert.Len(t, member.Schedules, 30)

		for date, entry := range member.Schedules {
			assert.Equal(t, date, entry.Date)
			// 保存されるエントリは必ず 1 つ以上のシフトを持つ
			require.NotEmpty(t, entry.Shifts)
			for _, shift := range entry.Shifts {
				assert.True(t, shift.IsValid(), string(shift))
			}
		}
	}
}

func TestGenerateDemoRosterRoundTrip(t *testing.T) {
	roster := GenerateDemoRoster(2025, time.June)

	data, err := json.Marshal(roster)
	require.NoError(t, err)

	var loaded domain.Roster
	require.NoError(t, json.Unmarshal(data, &loaded))

	// 現行フォーマットのみの勤務表は、保存→読み込み→移行を通しても値が変わらない
	assert.Equal(t, roster, schedule.Normalize(loaded))
}
