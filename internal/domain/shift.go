package domain

import (
	"slices"
	"strings"
)

type ShiftLabel string

const (
	ShiftOff          ShiftLabel = "休"
	ShiftMorningN     ShiftLabel = "朝N"
	ShiftDayMid       ShiftLabel = "昼中"
	ShiftDayN         ShiftLabel = "昼N"
	ShiftCNarre       ShiftLabel = "Cナレ"
	ShiftCNarre1      ShiftLabel = "Cナレ①"
	ShiftCNarre3      ShiftLabel = "Cナレ③"
	ShiftNightN       ShiftLabel = "夜N"
	ShiftNightS       ShiftLabel = "夜S"
	ShiftQuakeDrill   ShiftLabel = "地震訓練"
	ShiftCompOff      ShiftLabel = "必休"
	ShiftOffWork      ShiftLabel = "休(出)"
	ShiftCatchM       ShiftLabel = "キャッチM"
	ShiftCatchS       ShiftLabel = "キャッチS"
	ShiftCatchE       ShiftLabel = "キャッチE"
	ShiftAsaDoreM     ShiftLabel = "あさドレM"
	ShiftAsaDoreS     ShiftLabel = "あさドレS"
	ShiftRelay1       ShiftLabel = "あ中継①"
	ShiftRelay2       ShiftLabel = "あ中継②"
	ShiftComingShadow ShiftLabel = "カミング影"
)

// RestMarker を含むラベルは休み系として扱う（休・必休・休(出)）
const RestMarker = "休"

// ShiftLabels は全シフトラベルの一覧。この並び順が表示・集計の正式な順序となる
var ShiftLabels = []ShiftLabel{
	ShiftOff,
	ShiftMorningN,
	ShiftDayMid,
	ShiftDayN,
	ShiftCNarre,
	ShiftCNarre1,
	ShiftCNarre3,
	ShiftNightN,
	ShiftNightS,
	ShiftQuakeDrill,
	ShiftCompOff,
	ShiftOffWork,
	ShiftCatchM,
	ShiftCatchS,
	ShiftCatchE,
	ShiftAsaDoreM,
	ShiftAsaDoreS,
	ShiftRelay1,
	ShiftRelay2,
	ShiftComingShadow,
}

// IsValid は s がシフトラベル一覧に含まれるかを返す。
// 一覧は閉じた集合であり、外部から受け取ったラベルは必ずこれで検証してからモデルに入れる
func (s ShiftLabel) IsValid() bool {
	return slices.Contains(ShiftLabels, s)
}

// IsRest は s が休み系ラベルかを返す
func (s ShiftLabel) IsRest() bool {
	return strings.Contains(string(s), RestMarker)
}
