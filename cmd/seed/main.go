package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/staffsync-dev/staffsync/backend/internal/config"
	"github.com/staffsync-dev/staffsync/backend/internal/repository"
	"github.com/staffsync-dev/staffsync/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var year int
	var month int

	now := time.Now()
	flag.IntVar(&year, "year", now.Year(), "デモ勤務表を生成する年")
	flag.IntVar(&month, "month", int(now.Month()), "デモ勤務表を生成する月 (1-12)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if month < 1 || month > 12 {
		logger.Error("月は 1 から 12 の範囲で指定してください", slog.Int("month", month))
		os.Exit(1)
	}

	// 設定を読み込む
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("設定を読み込めません", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// データベース接続プールを作る
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

	// repository を作る
	repo := repository.NewRepository(cfg, dbpool)

	// デモ勤務表を生成して保存する
	roster := seed.GenerateDemoRoster(year, time.Month(month))
	if err := repo.SaveRoster(cfg.Storage.Key, roster); err != nil {
		logger.Error("デモ勤務表を保存できません", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("デモ勤務表を保存しました",
		slog.Int("year", year),
		slog.Int("month", month),
		slog.Int("members", len(roster)),
	)
}
