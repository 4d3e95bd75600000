package utils

import (
	"fmt"
	"math/rand"

	"github.com/staffsync-dev/staffsync/backend/internal/domain"
)

var mockNames = []string{
	"佐藤 健一", "鈴木 一郎", "高橋 花子", "田中 美咲", "伊藤 翔太",
	"渡辺 謙", "山本 未来", "中村 優", "小林 さくら", "加藤 剛",
	"吉田 輝", "山田 太郎", "佐々木 希", "山口 達也", "松本 潤",
	"井上 真央", "木村 拓哉", "林 修", "清水 翔太", "山崎 賢人",
	"池田 エライザ", "橋本 環奈", "中川 大志", "村上 信五", "近藤 真彦",
	"石川 遼", "長谷川 博己", "藤原 竜也", "岡田 准一", "斎藤 工",
}

var roles = []string{"部長", "課長", "リーダー", "メンバー"}

// MockMemberCount はデモ勤務表のメンバー数
var MockMemberCount = len(mockNames)

func MockMemberName(index int) string {
	return mockNames[index%len(mockNames)]
}

// MockMemberRole は先頭から 部長 1 名・課長 2 名・リーダー 5 名、残りはメンバーとする
func MockMemberRole(index int) string {
	switch {
	case index == 0:
		return roles[0]
	case index < 3:
		return roles[1]
	case index < 8:
		return roles[2]
	default:
		return roles[3]
	}
}

func MockAvatarURL(index int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%d/32/32", index+200)
}

// GenerateRandomShifts はデモ用のシフトの組を返す。
// 大半は 1 シフトのみで、約 2 割が休み、約 1 割は複数シフトの日になる
func GenerateRandomShifts() []domain.ShiftLabel {
	r := rand.Float64()

	switch {
	case r < 0.10:
		return []domain.ShiftLabel{domain.ShiftOff}
	case r < 0.20:
		return []domain.ShiftLabel{domain.ShiftMorningN}
	case r < 0.30:
		return []domain.ShiftLabel{domain.ShiftDayMid}
	case r < 0.35:
		return []domain.ShiftLabel{domain.ShiftCatchM}
	case r < 0.40:
		return []domain.ShiftLabel{domain.ShiftCatchS}
	case r < 0.45:
		return []domain.ShiftLabel{domain.ShiftAsaDoreM}
	case r < 0.50:
		return []domain.ShiftLabel{domain.ShiftNightN}
	case r < 0.55:
		return []domain.ShiftLabel{domain.ShiftRelay1}
	case r < 0.65:
		return []domain.ShiftLabel{domain.ShiftOff}
	case r < 0.70:
		return []domain.ShiftLabel{domain.ShiftCatchM, domain.ShiftComingShadow}
	case r < 0.75:
		return []domain.ShiftLabel{domain.ShiftMorningN, domain.ShiftRelay2}
	default:
		return []domain.ShiftLabel{domain.ShiftDayN}
	}
}

// GenerateRandomNote はシフトに応じたデモ用のメモを返す（複数行表示の確認も兼ねる）
func GenerateRandomNote(shifts []domain.ShiftLabel) string {
	for _, shift := range shifts {
		if shift == domain.ShiftRelay1 {
			return "機材搬入\n14:00〜リハ"
		}
	}
	for _, shift := range shifts {
		if shift == domain.ShiftCatchM {
			return "取材A"
		}
	}
	if rand.Float64() > 0.8 {
		return "13:00 会議\n第2会議室"
	}
	return ""
}
