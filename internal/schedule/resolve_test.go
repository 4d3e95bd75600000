package schedule

import (
	"testing"

	"github.com/staffsync-dev/staffsync/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMember(t *testing.T) {
	roster := domain.Roster{
		{ID: "member-0", Name: "佐藤 健一"},
		{ID: "member-1", Name: "鈴木 一郎"},
	}

	tests := []struct {
		name   string
		query  string
		wantID string
		found  bool
	}{
		{name: "問い合わせが名前の一部", query: "佐藤", wantID: "member-0", found: true},
		{name: "名前が問い合わせの一部", query: "佐藤 健一さん", wantID: "member-0", found: true},
		{name: "完全一致", query: "鈴木 一郎", wantID: "member-1", found: true},
		{name: "該当なし", query: "高橋", found: false},
		{name: "空文字は解決しない", query: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member, ok := ResolveMember(roster, tt.query)
			if !tt.found {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantID, member.ID)
		})
	}
}

func TestResolveMemberPrefersFirstInRosterOrder(t *testing.T) {
	// 名前が部分文字列関係にある場合は先に並んでいる方が選ばれる（仕様上の許容）
	roster := domain.Roster{
		{ID: "member-0", Name: "山田"},
		{ID: "member-1", Name: "山田 太郎"},
	}

	member, ok := ResolveMember(roster, "山田 太郎")
	require.True(t, ok)
	assert.Equal(t, "member-0", member.ID)
}
