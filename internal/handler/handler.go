package handler

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/go-playground/locales/ja"
	ja_translations "github.com/go-playground/validator/v10/translations/ja"
	"github.com/staffsync-dev/staffsync/backend/internal/assistant"
	"github.com/staffsync-dev/staffsync/backend/internal/config"
	"github.com/staffsync-dev/staffsync/backend/internal/domain"
	"github.com/staffsync-dev/staffsync/backend/internal/repository"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	assistant   *assistant.Assistant
	mailChannel *amqp.Channel
	redisClient *redis.Client

	// 起動時に設定から生成した共有パスワードのハッシュ
	viewPasswordHash []byte
	editPasswordHash []byte

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, ai *assistant.Assistant, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	ja := ja.New()
	uni := ut.New(ja, ja)
	trans, _ := uni.GetTranslator("ja")
	if err := ja_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	// シフトラベルの語彙は閉じているため、外部入力は必ずこの検証を通す
	if err := validate.RegisterValidation("shiftlabel", func(fl validator.FieldLevel) bool {
		return domain.ShiftLabel(fl.Field().String()).IsValid()
	}); err != nil {
		return nil, err
	}
	if err := validate.RegisterTranslation("shiftlabel", trans, func(ut ut.Translator) error {
		return ut.Add("shiftlabel", "{0}に無効な勤務内容が含まれています", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("shiftlabel", fe.Field())
		return t
	}); err != nil {
		return nil, err
	}

	viewHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.ViewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	editHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.EditPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		assistant:   ai,
		mailChannel: mailCh,
		redisClient: rdb,

		viewPasswordHash: viewHash,
		editPasswordHash: editHash,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 認証（閲覧・編集の共有パスワード）
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/view", h.UnlockView)
		r.Post("/edit", h.UnlockEdit)
		r.Post("/logout", h.Logout)
	})

	// 以下の API は閲覧ロックの解除後のみ呼び出せる
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.requireScope(ScopeView))

		r.Get("/roster", h.GetRoster)
		// チャットは閲覧権限で利用できる。回答に含まれる更新指示もここで適用する
		r.Post("/chat", h.Chat)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/daily", h.GetDailyReport)
			r.Get("/weekly", h.GetWeeklyReport)
		})

		// 以下は編集ロックの解除が必要
		r.Group(func(r chi.Router) {
			r.Use(h.requireScope(ScopeEdit))

			r.Put("/roster/members/{id}/schedule", h.UpdateScheduleEntry)
			r.Post("/roster/reset", h.ResetRoster)
			r.Post("/reports/weekly/digest", h.PublishWeeklyDigest)
		})
	})
}
