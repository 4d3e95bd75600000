package schedule

import (
	"testing"

	"github.com/staffsync-dev/staffsync/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() domain.Roster {
	return domain.Roster{
		{
			ID:   "member-0",
			Name: "佐藤 健一",
			Role: "部長",
			Schedules: map[string]domain.ScheduleEntry{
				"2025-06-02": {Date: "2025-06-02", Shifts: []domain.ShiftLabel{domain.ShiftMorningN}, Note: "取材A"},
				"2025-06-03": {Date: "2025-06-03", Shifts: []domain.ShiftLabel{domain.ShiftOff}},
			},
		},
		{
			ID:   "member-1",
			Name: "鈴木 一郎",
			Role: "メンバー",
			Schedules: map[string]domain.ScheduleEntry{
				"2025-06-02": {Date: "2025-06-02", Shifts: []domain.ShiftLabel{domain.ShiftCNarre}},
			},
		},
	}
}

func TestApplyDirectEditOverwritesEntry(t *testing.T) {
	roster := testRoster()

	entry := domain.ScheduleEntry{
		Date:   "2025-06-02",
		Shifts: []domain.ShiftLabel{domain.ShiftNightN, domain.ShiftRelay2},
		Note:   "機材搬入",
	}

	next, err := ApplyDirectEdit(roster, "member-0", entry)
	require.NoError(t, err)

	// 以前の内容に関係なく entry で丸ごと置き換わる
	assert.Equal(t, entry, next[0].Schedules["2025-06-02"])

	// 入力の勤務表は変わらない
	assert.Equal(t, "取材A", roster[0].Schedules["2025-06-02"].Note)
}

func TestApplyDirectEditDoesNotTouchOthers(t *testing.T) {
	roster := testRoster()

	entry := domain.ScheduleEntry{Date: "2025-06-02", Shifts: []domain.ShiftLabel{domain.ShiftDayMid}}
	next, err := ApplyDirectEdit(roster, "member-0", entry)
	require.NoError(t, err)

	// 編集していないメンバーは同じ参照のまま
	assert.Same(t, roster[1], next[1])

	// 編集したメンバーの他の日付も内容は同一
	assert.Equal(t, roster[0].Schedules["2025-06-03"], next[0].Schedules["2025-06-03"])
}

func TestApplyDirectEditRejectsUnknownMember(t *testing.T) {
	roster := testRoster()

	_, err := ApplyDirectEdit(roster, "member-99", domain.ScheduleEntry{
		Date:   "2025-06-02",
		Shifts: []domain.ShiftLabel{domain.ShiftOff},
	})

	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestApplyDirectEditRejectsEmptyShifts(t *testing.T) {
	roster := testRoster()

	_, err := ApplyDirectEdit(roster, "member-0", domain.ScheduleEntry{Date: "2025-06-02"})

	assert.ErrorIs(t, err, ErrEmptyShifts)
}

func TestApplyDirectEditCreatesEntryForNewDate(t *testing.T) {
	roster := testRoster()

	entry := domain.ScheduleEntry{Date: "2025-06-10", Shifts: []domain.ShiftLabel{domain.ShiftCatchM}}
	next, err := ApplyDirectEdit(roster, "member-1", entry)
	require.NoError(t, err)

	assert.Equal(t, entry, next[1].Schedules["2025-06-10"])
}

func TestApplyBatchUpdatesReplacesShiftsAndKeepsNote(t *testing.T) {
	roster := testRoster()

	next, applied := ApplyBatchUpdates(roster, []domain.UpdateCommand{
		{TargetName: "佐藤", Date: "2025-06-02", Shifts: []domain.ShiftLabel{domain.ShiftCNarre}},
	})

	assert.Equal(t, 1, applied)

	entry := next[0].Schedules["2025-06-02"]
	assert.Equal(t, []domain.ShiftLabel{domain.ShiftCNarre}, entry.Shifts)
	// 一括更新でメモと日付は変わらない
	assert.Equal(t, "取材A", entry.Note)
	assert.Equal(t, "2025-06-02", entry.Date)
}

func TestApplyBatchUpdatesSkipsUnresolvedCommand(t *testing.T) {
	roster := testRoster()

	next, applied := ApplyBatchUpdates(roster, []domain.UpdateCommand{
		{TargetName: "高橋", Date: "2025-06-02", Shifts: []domain.ShiftLabel{domain.ShiftOff}},
	})

	assert.Equal(t, 0, applied)
	// 解決できない指示は勤務表に影響しない
	assert.Equal(t, roster, next)
}

func TestApplyBatchUpdatesSkipsEmptyShifts(t *testing.T) {
	roster := testRoster()

	_, applied := ApplyBatchUpdates(roster, []domain.UpdateCommand{
		{TargetName: "佐藤", Date: "2025-06-02"},
	})

	assert.Equal(t, 0, applied)
}

func TestApplyBatchUpdatesCreatesPlaceholderEntry(t *testing.T) {
	roster := testRoster()

	next, applied := ApplyBatchUpdates(roster, []domain.UpdateCommand{
		{TargetName: "鈴木", Date: "2025-06-15", Shifts: []domain.ShiftLabel{domain.ShiftNightS}},
	})

	require.Equal(t, 1, applied)
	entry := next[1].Schedules["2025-06-15"]
	assert.Equal(t, "2025-06-15", entry.Date)
	assert.Equal(t, []domain.ShiftLabel{domain.ShiftNightS}, entry.Shifts)
	assert.Empty(t, entry.Note)
}

func TestApplyBatchUpdatesOrderIndependentAcrossKeys(t *testing.T) {
	commands := []domain.UpdateCommand{
		{TargetName: "佐藤", Date: "2025-06-02", Shifts: []domain.ShiftLabel{domain.ShiftDayN}},
		{TargetName: "鈴木", Date: "2025-06-03", Shifts: []domain.ShiftLabel{domain.ShiftCatchS}},
	}
	reversed := []domain.UpdateCommand{commands[1], commands[0]}

	a, _ := ApplyBatchUpdates(testRoster(), commands)
	b, _ := ApplyBatchUpdates(testRoster(), reversed)

	assert.Equal(t, a, b)
}

func TestApplyBatchUpdatesLaterCommandWinsOnConflict(t *testing.T) {
	roster := testRoster()

	next, applied := ApplyBatchUpdates(roster, []domain.UpdateCommand{
		{TargetName: "佐藤", Date: "2025-06-02", Shifts: []domain.ShiftLabel{domain.ShiftDayMid}},
		{TargetName: "佐藤 健一", Date: "2025-06-02", Shifts: []domain.ShiftLabel{domain.ShiftNightN}},
	})

	// 後の指示で上書きされ、累積はしない
	assert.Equal(t, 2, applied)
	assert.Equal(t, []domain.ShiftLabel{domain.ShiftNightN}, next[0].Schedules["2025-06-02"].Shifts)
}

func TestApplyBatchUpdatesDoesNotMutateInput(t *testing.T) {
	roster := testRoster()

	ApplyBatchUpdates(roster, []domain.UpdateCommand{
		{TargetName: "佐藤", Date: "2025-06-02", Shifts: []domain.ShiftLabel{domain.ShiftQuakeDrill}},
	})

	assert.Equal(t, []domain.ShiftLabel{domain.ShiftMorningN}, roster[0].Schedules["2025-06-02"].Shifts)
}
