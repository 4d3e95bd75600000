package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/staffsync-dev/staffsync/backend/internal/config"
	"github.com/staffsync-dev/staffsync/backend/internal/domain"
	"google.golang.org/genai"
)

// Assistant は自然言語の指示を Gemini へ渡し、表示用テキストと
// 構造化された更新指示（update_schedule の JSON ブロック）を受け取る
type Assistant struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, cfg *config.Config) (*Assistant, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &Assistant{
		client: client,
		model:  cfg.Gemini.Model,
	}, nil
}

// GenerateScheduleResponse はユーザーの指示に対する応答テキストを生成する。
// 応答には update_schedule の JSON ブロックが含まれることがあり、
// その抽出と検証は ExtractUpdates が行う
func (a *Assistant) GenerateScheduleResponse(ctx context.Context, query string, roster domain.Roster, now time.Time) (string, error) {
	systemPrompt, err := buildSystemPrompt(roster, now)
	if err != nil {
		return "", err
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(query), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		// JSON 出力を安定させるため温度は低めに固定する
		Temperature: genai.Ptr[float32](0.1),
	})
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "申し訳ありません。回答を生成できませんでした。", nil
	}

	return text, nil
}

type simplifiedMember struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Schedule string `json:"schedule"`
}

func buildSystemPrompt(roster domain.Roster, now time.Time) (string, error) {
	simplified := make([]simplifiedMember, 0, len(roster))
	for _, member := range roster {
		dates := make([]string, 0, len(member.Schedules))
		for date := range member.Schedules {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		days := make([]string, 0, len(dates))
		for _, date := range dates {
			entry := member.Schedules[date]
			shifts := make([]string, 0, len(entry.Shifts))
			for _, s := range entry.Shifts {
				shifts = append(shifts, string(s))
			}
			days = append(days, fmt.Sprintf("%s:%s", date, strings.Join(shifts, ",")))
		}

		simplified = append(simplified, simplifiedMember{
			Name:     member.Name,
			Role:     member.Role,
			Schedule: strings.Join(days, "|"),
		})
	}

	data, err := json.Marshal(simplified)
	if err != nil {
		return "", err
	}

	labels := make([]string, 0, len(domain.ShiftLabels))
	for _, label := range domain.ShiftLabels {
		labels = append(labels, string(label))
	}

	prompt := fmt.Sprintf(`あなたは「StaffSync AI」という勤務表管理アシスタントです。

**現在のコンテキスト:**
- 年月: %d年%d月
- 有効な勤務内容(ShiftType): [%s]

**ユーザーの意図を判断してください:**
1. **質問**: 「明日の夜勤は？」「佐藤さんの予定は？」など。
   -> 日本語で丁寧に答えてください。

2. **変更・指示**: 「佐藤さんを毎週月曜日Cナレにして」「明日の鈴木さんを休みに変更」など。
   -> 回答の最後に、以下のJSONフォーマットを含めてください。
   -> JSON以外の解説テキストも必ず含めてください（「承知しました。更新します。」など）。
   -> 「毎週月曜日」などの繰り返し表現は、現在の年月（%d年%d月）のカレンダーに基づいて具体的な日付(YYYY-MM-DD)に展開してください。

**変更指示の場合のJSON出力フォーマット:**
`+"```json"+`
{
  "action": "update_schedule",
  "updates": [
     {
       "name": "対象者の名前(部分一致)",
       "date": "YYYY-MM-DD",
       "shifts": ["正確なShiftType文字列"]
     }
  ]
}
`+"```"+`

**データ:**
%s`,
		now.Year(), int(now.Month()),
		strings.Join(labels, ", "),
		now.Year(), int(now.Month()),
		string(data),
	)

	return prompt, nil
}
