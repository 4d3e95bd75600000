package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/staffsync-dev/staffsync/backend/internal/assistant"
	"github.com/staffsync-dev/staffsync/backend/internal/schedule"
)

// Chat はアシスタントへの問い合わせを処理する。回答に更新指示が含まれる場合は
// 勤務表へ適用してから保存する
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message" validate:"required,max=500"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	roster, err := h.currentRoster()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Gemini.Timeout)*time.Second)
	defer cancel()

	reply, err := h.assistant.GenerateScheduleResponse(ctx, req.Message, roster, time.Now())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	commands, display := assistant.ExtractUpdates(reply)

	applied := 0
	if len(commands) > 0 {
		next, n := schedule.ApplyBatchUpdates(roster, commands)
		if n > 0 {
			if err := h.saveRoster(next); err != nil {
				h.internalServerError(w, r, err)
				return
			}
		}
		applied = n
	}

	h.successResponse(w, r, "回答を生成しました", map[string]any{
		"reply":          display,
		"appliedUpdates": applied,
	})
}
