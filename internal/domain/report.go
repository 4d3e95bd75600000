package domain

// 週次レポートの連勤しきい値。レポート自体は生の日数のみを持ち、
// 警告表示の判断は各利用側がこの定数で行う
const (
	FullWeekWorkDays = 7 // 1 週間すべてが勤務日
	WarnWorkDays     = 6 // 休みが 1 日以下
)

// MultipleAssignment は同じ日に複数のシフトが登録されているメンバー
type MultipleAssignment struct {
	Member *Member      `json:"member"`
	Shifts []ShiftLabel `json:"shifts"`
}

// DailyReport は 1 日分のシフトチェック結果
type DailyReport struct {
	Date string `json:"date"`

	// シフト未入力のメンバー。エントリがない場合とシフトが空の場合は同じ「未入力」として扱う
	Missing []*Member `json:"missing"`

	// 複数シフトが登録されているメンバー（エラーではなく確認用）
	Multiple []MultipleAssignment `json:"multiple"`

	// ラベルごとの人数。複数シフトを持つメンバーは持っているラベルごとに 1 回ずつ数えるため、
	// 合計が総人数を超えることがある
	Counts map[ShiftLabel]int `json:"counts"`

	// 人数が 0 の勤務内容（休み系ラベルを除く）。並びはシフトラベル一覧の順
	ZeroCoverage []ShiftLabel `json:"zeroCoverage"`

	HasIssues bool `json:"hasIssues"`
}

// MemberWorkload は 7 日間ウィンドウ内のメンバーごとの勤務日数
type MemberWorkload struct {
	Member   *Member `json:"member"`
	WorkDays int     `json:"workDays"` // 休み系以外のシフトが 1 つ以上ある日数
	OffDays  int     `json:"offDays"`  // 7 - WorkDays
}

// WeeklyReport は日曜始まりの 7 日間ウィンドウに対するチェック結果
type WeeklyReport struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	// 問題のある日のみの日次レポート（日付順）
	DailyIssues []*DailyReport `json:"dailyIssues"`

	// 勤務日数の多い順（同数は勤務表の並び順を保つ）
	Workload []MemberWorkload `json:"workload"`
}
