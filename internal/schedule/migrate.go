package schedule

import (
	"github.com/staffsync-dev/staffsync/backend/internal/domain"
)

// Normalize は読み込んだ勤務表を現行フォーマットへ移行する。
// 旧フォーマット（shift 単一値）のエントリは 1 要素の shifts に包み直し、
// 現行フォーマットのエントリはそのまま通す。
// 冪等であり、入力の勤務表は変更しない
func Normalize(roster domain.Roster) domain.Roster {
	normalized := make(domain.Roster, 0, len(roster))

	for _, member := range roster {
		m := *member
		m.Schedules = make(map[string]domain.ScheduleEntry, len(member.Schedules))

		for date, entry := range member.Schedules {
			if len(entry.Shifts) == 0 && entry.LegacyShift != "" {
				entry.Shifts = []domain.ShiftLabel{entry.LegacyShift}
			}
			entry.LegacyShift = ""
			m.Schedules[date] = entry
		}

		normalized = append(normalized, &m)
	}

	return normalized
}
