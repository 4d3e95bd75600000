package seed

import (
	"fmt"
	"time"

	"github.com/staffsync-dev/staffsync/backend/internal/domain"
	"github.com/staffsync-dev/staffsync/backend/internal/utils"
)

// GenerateDemoRoster は指定した年月のデモ勤務表を生成する。
// 保存データがない・壊れているときのフォールバックと、明示的なリセットの両方で使う
func GenerateDemoRoster(year int, month time.Month) domain.Roster {
	roster := make(domain.Roster, 0, utils.MockMemberCount)

	for i := 0; i < utils.MockMemberCount; i++ {
		roster = append(roster, &domain.Member{
			ID:        fmt.Sprintf("member-%d", i),
			Name:      utils.MockMemberName(i),
			Role:      utils.MockMemberRole(i),
			AvatarURL: utils.MockAvatarURL(i),
			Schedules: generateMonthSchedule(year, month),
		})
	}

	return roster
}

func generateMonthSchedule(year int, month time.Month) map[string]domain.ScheduleEntry {
	schedules := make(map[string]domain.ScheduleEntry)

	// 翌月の 0 日目 = 当月の末日
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		shifts := utils.GenerateRandomShifts()

		schedules[date] = domain.ScheduleEntry{
			Date:   date,
			Shifts: shifts,
			Note:   utils.GenerateRandomNote(shifts),
		}
	}

	return schedules
}
