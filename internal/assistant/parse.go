package assistant

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/staffsync-dev/staffsync/backend/internal/domain"
)

const updateAction = "update_schedule"

// 応答から JSON ブロックを取り除いた後に表示する既定のテキスト
const updatedFallbackText = "シフトを更新しました。"

var fencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

type commandPayload struct {
	Action  string `json:"action"`
	Updates []struct {
		Name   string   `json:"name"`
		Date   string   `json:"date"`
		Shifts []string `json:"shifts"`
	} `json:"updates"`
}

// ExtractUpdates は応答テキストから update_schedule の JSON ブロックを取り出し、
// 検証済みの更新指示と JSON を取り除いた表示用テキストを返す。
// JSON ブロックがない、壊れている、action が違う場合はすべて
// 「指示なしの表示専用テキスト」として扱い、元のテキストをそのまま返す。
// 指示の中身も検証し、名前が空・日付が不正・語彙外のみのシフトの指示は捨てる
func ExtractUpdates(text string) ([]domain.UpdateCommand, string) {
	match := fencedJSON.FindStringSubmatch(text)
	if match == nil {
		return nil, text
	}

	var payload commandPayload
	if err := json.Unmarshal([]byte(match[1]), &payload); err != nil {
		return nil, text
	}
	if payload.Action != updateAction {
		return nil, text
	}

	commands := make([]domain.UpdateCommand, 0, len(payload.Updates))
	for _, update := range payload.Updates {
		if update.Name == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", update.Date); err != nil {
			continue
		}

		shifts := make([]domain.ShiftLabel, 0, len(update.Shifts))
		for _, s := range update.Shifts {
			label := domain.ShiftLabel(s)
			if label.IsValid() {
				shifts = append(shifts, label)
			}
		}
		if len(shifts) == 0 {
			continue
		}

		commands = append(commands, domain.UpdateCommand{
			TargetName: update.Name,
			Date:       update.Date,
			Shifts:     shifts,
		})
	}

	display := strings.TrimSpace(fencedJSON.ReplaceAllString(text, ""))
	if display == "" {
		display = updatedFallbackText
	}

	return commands, display
}
