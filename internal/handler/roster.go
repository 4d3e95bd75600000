package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/staffsync-dev/staffsync/backend/internal/domain"
	"github.com/staffsync-dev/staffsync/backend/internal/schedule"
	"github.com/staffsync-dev/staffsync/backend/internal/seed"
)

// currentRoster は保存済みの勤務表を読み込んで現行フォーマットへ移行して返す。
// 保存データがない・壊れている場合はデモ勤務表を生成して保存し直す。
// これはエラーではなく通常の復旧として扱う
func (h *Handler) currentRoster() (domain.Roster, error) {
	roster, err := h.repository.GetRoster(h.config.Storage.Key)
	if err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError

		switch {
		case errors.Is(err, sql.ErrNoRows), errors.As(err, &syntaxErr), errors.As(err, &typeErr):
			slog.Warn("保存された勤務表を読み込めないため、デモ勤務表を生成します", "error", err)

			now := time.Now()
			demo := seed.GenerateDemoRoster(now.Year(), now.Month())
			if err := h.repository.SaveRoster(h.config.Storage.Key, demo); err != nil {
				return nil, err
			}
			return demo, nil
		default:
			return nil, err
		}
	}

	return schedule.Normalize(roster), nil
}

func (h *Handler) saveRoster(roster domain.Roster) error {
	return h.repository.SaveRoster(h.config.Storage.Key, roster)
}

func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	roster, err := h.currentRoster()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "勤務表を取得しました", roster)
}

func (h *Handler) UpdateScheduleEntry(w http.ResponseWriter, r *http.Request) {
	memberID := chi.URLParam(r, "id")

	var req struct {
		Date   string   `json:"date" validate:"required,datetime=2006-01-02"`
		Shifts []string `json:"shifts" validate:"required,min=1,dive,shiftlabel"`
		Note   string   `json:"note" validate:"max=500"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shifts := make([]domain.ShiftLabel, 0, len(req.Shifts))
	for _, s := range req.Shifts {
		shifts = append(shifts, domain.ShiftLabel(s))
	}

	entry := domain.ScheduleEntry{
		Date:   req.Date,
		Shifts: shifts,
		Note:   req.Note,
	}

	roster, err := h.currentRoster()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	next, err := schedule.ApplyDirectEdit(roster, memberID, entry)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrMemberNotFound), errors.Is(err, schedule.ErrEmptyShifts):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.saveRoster(next); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "シフトを保存しました", entry)
}

// ResetRoster は保存済みの勤務表を破棄してデモ勤務表を生成し直す
func (h *Handler) ResetRoster(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	demo := seed.GenerateDemoRoster(now.Year(), now.Month())

	if err := h.saveRoster(demo); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "勤務表を初期化しました", demo)
}
