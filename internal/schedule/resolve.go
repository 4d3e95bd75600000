package schedule

import (
	"strings"

	"github.com/staffsync-dev/staffsync/backend/internal/domain"
)

// ResolveMember は自由記述の名前を勤務表中の 1 人のメンバーへ解決する。
// メンバー名が問い合わせ文字列を含むか、問い合わせ文字列がメンバー名を含むとき
// 一致とみなし（「佐藤」→「佐藤 健一」、「佐藤 健一さん」→「佐藤 健一」の両方向）、
// 勤務表の並び順で最初に一致したメンバーを返す。
// 名前が部分文字列関係にあるメンバー同士は曖昧になるが、エラーにはせず
// 先に並んでいる方を選ぶ。
// 一致するメンバーがいない場合は false を返す。これはエラーではなく、
// 呼び出し側が該当の更新指示を読み飛ばすための通常の結果である
func ResolveMember(roster domain.Roster, name string) (*domain.Member, bool) {
	idx, ok := resolveMemberIndex(roster, name)
	if !ok {
		return nil, false
	}
	return roster[idx], true
}

func resolveMemberIndex(roster domain.Roster, name string) (int, bool) {
	if name == "" {
		return 0, false
	}

	for i, m := range roster {
		if strings.Contains(m.Name, name) || strings.Contains(name, m.Name) {
			return i, true
		}
	}

	return 0, false
}
