package schedule

import (
	"testing"
	"time"

	"github.com/staffsync-dev/staffsync/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStart(t *testing.T) {
	// 2025-06-04 は水曜日。直近の日曜日は 2025-06-01
	wednesday := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-01", WeekStart(wednesday).Format(DateLayout))

	// 日曜日はその日自身が週の開始
	sunday := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-01", WeekStart(sunday).Format(DateLayout))
}

func TestBuildDailyReport(t *testing.T) {
	const date = "2025-06-02"

	roster := domain.Roster{
		{ID: "a", Name: "佐藤 健一", Schedules: map[string]domain.ScheduleEntry{}},
		{ID: "b", Name: "鈴木 一郎", Schedules: map[string]domain.ScheduleEntry{
			date: {Date: date, Shifts: []domain.ShiftLabel{domain.ShiftOff, domain.ShiftCNarre}},
		}},
		{ID: "c", Name: "高橋 花子", Schedules: map[string]domain.ScheduleEntry{
			date: {Date: date, Shifts: []domain.ShiftLabel{domain.ShiftCNarre}},
		}},
	}

	report := BuildDailyReport(roster, date)

	require.Len(t, report.Missing, 1)
	assert.Equal(t, "a", report.Missing[0].ID)

	require.Len(t, report.Multiple, 1)
	assert.Equal(t, "b", report.Multiple[0].Member.ID)

	assert.Equal(t, 2, report.Counts[domain.ShiftCNarre])
	assert.Equal(t, 1, report.Counts[domain.ShiftOff])
	assert.NotContains(t, report.ZeroCoverage, domain.ShiftCNarre)
	assert.True(t, report.HasIssues)
}

func TestBuildDailyReportTreatsEmptyShiftsAsMissing(t *testing.T) {
	const date = "2025-06-02"

	roster := domain.Roster{
		{ID: "a", Name: "佐藤 健一", Schedules: map[string]domain.ScheduleEntry{
			date: {Date: date, Shifts: []domain.ShiftLabel{}},
		}},
	}

	report := BuildDailyReport(roster, date)

	require.Len(t, report.Missing, 1)
	assert.Equal(t, "a", report.Missing[0].ID)
}

func TestBuildDailyReportZeroCoverageExcludesRestLabels(t *testing.T) {
	// 誰も何も入力していない日。休み系以外の全ラベルが配置なしになる
	roster := domain.Roster{
		{ID: "a", Name: "佐藤 健一", Schedules: map[string]domain.ScheduleEntry{}},
	}

	report := BuildDailyReport(roster, "2025-06-02")

	assert.NotContains(t, report.ZeroCoverage, domain.ShiftOff)
	assert.NotContains(t, report.ZeroCoverage, domain.ShiftCompOff)
	assert.NotContains(t, report.ZeroCoverage, domain.ShiftOffWork)
	assert.Contains(t, report.ZeroCoverage, domain.ShiftCNarre)

	// 休・必休・休(出) の 3 ラベルを除いた全ラベルが並ぶ
	assert.Len(t, report.ZeroCoverage, len(domain.ShiftLabels)-3)
}

func TestBuildDailyReportZeroCoverageKeepsVocabularyOrder(t *testing.T) {
	roster := domain.Roster{
		{ID: "a", Name: "佐藤 健一", Schedules: map[string]domain.ScheduleEntry{}},
	}

	report := BuildDailyReport(roster, "2025-06-02")

	want := make([]domain.ShiftLabel, 0)
	for _, label := range domain.ShiftLabels {
		if !label.IsRest() {
			want = append(want, label)
		}
	}
	assert.Equal(t, want, report.ZeroCoverage)
}

func TestBuildWeeklyReportWorkload(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) // 日曜日

	work := []domain.ShiftLabel{domain.ShiftCNarre}
	off := []domain.ShiftLabel{domain.ShiftOff}

	roster := domain.Roster{
		{ID: "fullweek", Name: "佐藤 健一", Schedules: map[string]domain.ScheduleEntry{}},
		{ID: "resting", Name: "鈴木 一郎", Schedules: map[string]domain.ScheduleEntry{}},
	}
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i).Format(DateLayout)
		roster[0].Schedules[date] = domain.ScheduleEntry{Date: date, Shifts: work}
		roster[1].Schedules[date] = domain.ScheduleEntry{Date: date, Shifts: off}
	}

	report := BuildWeeklyReport(roster, start.AddDate(0, 0, 3))

	assert.Equal(t, "2025-06-01", report.StartDate)
	assert.Equal(t, "2025-06-07", report.EndDate)

	require.Len(t, report.Workload, 2)
	assert.Equal(t, "fullweek", report.Workload[0].Member.ID)
	assert.Equal(t, 7, report.Workload[0].WorkDays)
	assert.Equal(t, 0, report.Workload[0].OffDays)
	assert.Equal(t, domain.FullWeekWorkDays, report.Workload[0].WorkDays)

	assert.Equal(t, "resting", report.Workload[1].Member.ID)
	assert.Equal(t, 0, report.Workload[1].WorkDays)
	assert.Equal(t, 7, report.Workload[1].OffDays)
}

func TestBuildWeeklyReportWorkloadTiesKeepRosterOrder(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	roster := domain.Roster{
		{ID: "first", Name: "佐藤 健一", Schedules: map[string]domain.ScheduleEntry{}},
		{ID: "second", Name: "鈴木 一郎", Schedules: map[string]domain.ScheduleEntry{}},
	}
	for _, member := range roster {
		date := start.Format(DateLayout)
		member.Schedules[date] = domain.ScheduleEntry{Date: date, Shifts: []domain.ShiftLabel{domain.ShiftDayMid}}
	}

	report := BuildWeeklyReport(roster, start)

	assert.Equal(t, "first", report.Workload[0].Member.ID)
	assert.Equal(t, "second", report.Workload[1].Member.ID)
}

func TestBuildWeeklyReportDailyIssuesInDateOrder(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// 全日付が何らかの問題を持つ小さな勤務表
	roster := domain.Roster{
		{ID: "a", Name: "佐藤 健一", Schedules: map[string]domain.ScheduleEntry{}},
	}

	report := BuildWeeklyReport(roster, start.AddDate(0, 0, 6))

	require.Len(t, report.DailyIssues, 7)
	for i, daily := range report.DailyIssues {
		assert.Equal(t, start.AddDate(0, 0, i).Format(DateLayout), daily.Date)
	}
}
