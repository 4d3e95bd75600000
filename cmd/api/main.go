package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/staffsync-dev/staffsync/backend/internal/assistant"
	"github.com/staffsync-dev/staffsync/backend/internal/config"
	"github.com/staffsync-dev/staffsync/backend/internal/handler"
	"github.com/staffsync-dev/staffsync/backend/internal/repository"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * logger の作成
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * 設定の読み込み
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("設定を読み込めません", "error", err)
		return
	}

	/**********************************************
	 * データベースへの接続
	 **********************************************/
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("データベース接続プールを作成できません", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open は接続プールを作るだけで実際には接続しないため、明示的に ping する
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("データベースに接続できません", "error", err)
		return
	}

	/**********************************************
	 * repository の作成
	 **********************************************/
	repo := repository.NewRepository(cfg, dbpool)

	/**********************************************
	 * rabbitmq への接続
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("rabbitmq に接続できません", "error", err)
		return
	}
	defer conn.Close()

	// チャネルを開く
	ch, err := conn.Channel()
	if err != nil {
		logger.Error("チャネルを開けません", "error", err)
		return
	}
	defer ch.Close()

	// キューを宣言する
	_, err = ch.QueueDeclare(
		"email_queue",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("キューを宣言できません", "error", err)
		return
	}

	/**********************************************
	 * redis への接続
	 **********************************************/
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	/**********************************************
	 * アシスタントの作成
	 **********************************************/
	ai, err := assistant.New(context.Background(), cfg)
	if err != nil {
		logger.Error("アシスタントを作成できません", "error", err)
		return
	}

	/**********************************************
	 * handler の作成
	 **********************************************/
	handler, err := handler.NewHandler(cfg, repo, ai, ch, rdb)
	if err != nil {
		logger.Error("handler を作成できません", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * HTTP サーバーの起動
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("サーバーを起動しています...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("サーバーを起動できません", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("サーバーを停止しています...")

	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("サーバーの停止に失敗しました", slog.String("error", err.Error()))
	}
	logger.Info("サーバーを停止しました")
}
