package domain

// ScheduleEntry は 1 人のメンバーの 1 日分の勤務内容
type ScheduleEntry struct {
	Date   string       `json:"date"` // YYYY-MM-DD
	Shifts []ShiftLabel `json:"shifts"`
	Note   string       `json:"note"`

	// 旧フォーマットの単一シフト。読み込み時に schedule.Normalize が
	// Shifts へ移し替えるため、移行後は常に空になる
	LegacyShift ShiftLabel `json:"shift,omitempty"`
}

type Member struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	Role      string                   `json:"role"`
	AvatarURL string                   `json:"avatarUrl"`
	Schedules map[string]ScheduleEntry `json:"schedules"` // キーは YYYY-MM-DD
}

// Roster は全メンバーの並び。並び順は安定であり、表示・名前解決の正式な順序となる。
// 永続化はこの単位で行う
type Roster []*Member

func (r Roster) FindByID(id string) (*Member, bool) {
	for _, m := range r {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}
