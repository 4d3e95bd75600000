package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/staffsync-dev/staffsync/backend/internal/domain"
	"github.com/staffsync-dev/staffsync/backend/internal/schedule"
)

func (h *Handler) GetDailyReport(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format(schedule.DateLayout)
	} else if _, err := time.Parse(schedule.DateLayout, date); err != nil {
		h.errorResponse(w, r, "日付の形式が正しくありません")
		return
	}

	roster, err := h.currentRoster()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "日次チェック結果を取得しました", schedule.BuildDailyReport(roster, date))
}

func (h *Handler) GetWeeklyReport(w http.ResponseWriter, r *http.Request) {
	ref := time.Now()
	if date := r.URL.Query().Get("date"); date != "" {
		parsed, err := time.Parse(schedule.DateLayout, date)
		if err != nil {
			h.errorResponse(w, r, "日付の形式が正しくありません")
			return
		}
		ref = parsed
	}

	roster, err := h.currentRoster()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "週次チェック結果を取得しました", schedule.BuildWeeklyReport(roster, ref))
}

// PublishWeeklyDigest は週次チェック結果を要約してメールキューへ送る。
// 実際の送信はメールワーカーが行う
func (h *Handler) PublishWeeklyDigest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		To string `json:"to" validate:"omitempty,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	to := req.To
	if to == "" {
		to = h.config.Email.DigestTo
	}
	if to == "" {
		h.errorResponse(w, r, "送信先メールアドレスが設定されていません")
		return
	}

	roster, err := h.currentRoster()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	report := schedule.BuildWeeklyReport(roster, time.Now())

	data := domain.WeeklyReportMailData{
		StartDate: report.StartDate,
		EndDate:   report.EndDate,
	}
	for _, daily := range report.DailyIssues {
		data.IssueDates = append(data.IssueDates, daily.Date)
		data.MissingTotal += len(daily.Missing)
	}
	if len(report.Workload) > 0 {
		data.BusiestName = report.Workload[0].Member.Name
		data.BusiestDays = report.Workload[0].WorkDays
	}

	mailMessage := domain.MailMessage{
		Type: "weekly_report",
		To:   to,
		Data: data,
	}

	// メールを直列化する
	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// メッセージキューへ送信する
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "週次ダイジェストをメールキューへ送信しました", nil)
}
