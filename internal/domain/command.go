package domain

// UpdateCommand は AI アシスタントの応答から抽出された 1 件の更新指示。
// 永続化はされず、Update Pipeline で一度消費されたら破棄される
type UpdateCommand struct {
	TargetName string       `json:"name"` // 部分一致で解決される対象者の名前
	Date       string       `json:"date"` // YYYY-MM-DD
	Shifts     []ShiftLabel `json:"shifts"`
}
