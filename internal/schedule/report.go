package schedule

import (
	"sort"
	"time"

	"github.com/staffsync-dev/staffsync/backend/internal/domain"
)

const DateLayout = "2006-01-02"

// WeekStart は ref を含む週の開始日（ref 以前で最も近い日曜日）を返す
func WeekStart(ref time.Time) time.Time {
	return ref.AddDate(0, 0, -int(ref.Weekday()))
}

// BuildDailyReport は指定日のシフトチェック結果を計算する。
// 勤務表には一切手を加えない純粋な集計であり、毎回計算し直しても十分に軽い
func BuildDailyReport(roster domain.Roster, date string) *domain.DailyReport {
	report := &domain.DailyReport{
		Date:         date,
		Missing:      make([]*domain.Member, 0),
		Multiple:     make([]domain.MultipleAssignment, 0),
		Counts:       make(map[domain.ShiftLabel]int, len(domain.ShiftLabels)),
		ZeroCoverage: make([]domain.ShiftLabel, 0),
	}

	for _, label := range domain.ShiftLabels {
		report.Counts[label] = 0
	}

	for _, member := range roster {
		entry, ok := member.Schedules[date]

		var shifts []domain.ShiftLabel
		if ok {
			shifts = entry.Shifts
		}

		if len(shifts) == 0 {
			report.Missing = append(report.Missing, member)
			continue
		}

		if len(shifts) > 1 {
			report.Multiple = append(report.Multiple, domain.MultipleAssignment{
				Member: member,
				Shifts: shifts,
			})
		}

		for _, shift := range shifts {
			// 語彙は閉じているため、万一語彙外のラベルが紛れ込んでいても数えない
			if _, known := report.Counts[shift]; known {
				report.Counts[shift]++
			}
		}
	}

	for _, label := range domain.ShiftLabels {
		if report.Counts[label] == 0 && !label.IsRest() {
			report.ZeroCoverage = append(report.ZeroCoverage, label)
		}
	}

	report.HasIssues = len(report.Missing) > 0 || len(report.Multiple) > 0 || len(report.ZeroCoverage) > 0

	return report
}

// BuildWeeklyReport は ref を含む日曜始まりの 7 日間に対するチェック結果を計算する
func BuildWeeklyReport(roster domain.Roster, ref time.Time) *domain.WeeklyReport {
	start := WeekStart(ref)

	dates := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, start.AddDate(0, 0, i).Format(DateLayout))
	}

	report := &domain.WeeklyReport{
		StartDate:   dates[0],
		EndDate:     dates[6],
		DailyIssues: make([]*domain.DailyReport, 0),
		Workload:    make([]domain.MemberWorkload, 0, len(roster)),
	}

	for _, date := range dates {
		daily := BuildDailyReport(roster, date)
		if daily.HasIssues {
			report.DailyIssues = append(report.DailyIssues, daily)
		}
	}

	for _, member := range roster {
		workDays := 0
		for _, date := range dates {
			entry, ok := member.Schedules[date]
			if !ok {
				continue
			}
			for _, shift := range entry.Shifts {
				if !shift.IsRest() {
					workDays++
					break
				}
			}
		}

		report.Workload = append(report.Workload, domain.MemberWorkload{
			Member:   member,
			WorkDays: workDays,
			OffDays:  7 - workDays,
		})
	}

	// 勤務日数の多い順。同数のときは勤務表の並び順を保つ
	sort.SliceStable(report.Workload, func(i, j int) bool {
		return report.Workload[i].WorkDays > report.Workload[j].WorkDays
	})

	return report
}
