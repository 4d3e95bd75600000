package schedule

import (
	"errors"
	"maps"
	"slices"

	"github.com/staffsync-dev/staffsync/backend/internal/domain"
)

var (
	ErrMemberNotFound = errors.New("指定されたメンバーが存在しません")
	ErrEmptyShifts    = errors.New("シフトが 1 つも選択されていません")
)

// ApplyDirectEdit はセル編集を適用した新しい勤務表を返す。
// 対象メンバーの entry.Date のエントリは entry で丸ごと置き換える（マージではない）。
// 編集対象以外のメンバー、および対象メンバーの他の日付は入力と同じ参照を共有する。
// 入力の勤務表は変更しない。
// 存在しないメンバーの指定は呼び出し側の契約違反であり、エラーとして返す。
// シフトが空のエントリの保存も許可しない
func ApplyDirectEdit(roster domain.Roster, memberID string, entry domain.ScheduleEntry) (domain.Roster, error) {
	if len(entry.Shifts) == 0 {
		return nil, ErrEmptyShifts
	}

	idx := -1
	for i, m := range roster {
		if m.ID == memberID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrMemberNotFound
	}

	next := slices.Clone(roster)
	next[idx] = cloneMember(roster[idx])
	next[idx].Schedules[entry.Date] = entry

	return next, nil
}

// ApplyBatchUpdates は外部由来の更新指示の一括適用を行い、新しい勤務表と
// 実際に適用された指示の数を返す。指示ごとに独立して名前を解決し、
// 解決できない指示とシフトが空の指示は黙って読み飛ばす（ベストエフォート）。
// 既存エントリがあればシフトのみを丸ごと置き換え、メモと日付は保持する。
// エントリがなければシフトのみの新規エントリを作る。
// 指示は入力順に適用され、同じ (メンバー, 日付) に対しては後の指示が勝つ。
// 入力の勤務表は変更しない
func ApplyBatchUpdates(roster domain.Roster, commands []domain.UpdateCommand) (domain.Roster, int) {
	next := slices.Clone(roster)
	cloned := make(map[int]bool)
	applied := 0

	for _, cmd := range commands {
		if len(cmd.Shifts) == 0 {
			continue
		}

		idx, ok := resolveMemberIndex(next, cmd.TargetName)
		if !ok {
			continue
		}

		if !cloned[idx] {
			next[idx] = cloneMember(next[idx])
			cloned[idx] = true
		}

		entry, exists := next[idx].Schedules[cmd.Date]
		if !exists {
			entry = domain.ScheduleEntry{Date: cmd.Date}
		}
		entry.Shifts = cmd.Shifts
		next[idx].Schedules[cmd.Date] = entry

		applied++
	}

	return next, applied
}

func cloneMember(member *domain.Member) *domain.Member {
	m := *member
	m.Schedules = maps.Clone(member.Schedules)
	if m.Schedules == nil {
		m.Schedules = make(map[string]domain.ScheduleEntry)
	}
	return &m
}
