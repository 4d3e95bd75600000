package main

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/staffsync-dev/staffsync/backend/internal/config"
	"github.com/staffsync-dev/staffsync/backend/internal/domain"
	"github.com/wneessen/go-mail"
)

func main() {
	/**********************************************
	 * logger の作成
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * 設定の読み込み
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("設定を読み込めません", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * メールクライアントの作成
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("メールクライアントを作成できません", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	// メールサーバーへ接続できるか確認する
	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("メールサーバーに接続できません", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * RabbitMQ への接続
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("RabbitMQ に接続できません", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	// チャネルを開く
	ch, err := conn.Channel()
	if err != nil {
		logger.Error("チャネルを開けません", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	// キューを宣言する
	q, err := ch.QueueDeclare(
		"email_queue", // キュー名
		true,          // 永続化する
		false,         // 消費者がいなくてもキューを削除しない
		false,         // 排他にしない
		false,         // RabbitMQ の応答を待つ
		nil,           // 追加引数
	)
	if err != nil {
		logger.Error("キューを宣言できません", slog.String("error", err.Error()))
		return
	}

	// CTRL+C を受け取る
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// メッセージを消費する
	msgs, err := ch.Consume(
		q.Name, // キュー
		"",     // 消費者タグは RabbitMQ に自動採番させる
		false,  // 自動 ack しない
		false,  // 排他にしない
		false,  // no-local は RabbitMQ が未対応のため false
		false,  // RabbitMQ の応答を待つ
		nil,    // 追加引数
	)
	if err != nil {
		logger.Error("メッセージを消費できません", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// goroutine 停止用のコンテキスト
	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("メッセージを受信しました", slog.String("message", string(msg.Body)))
				// メール情報を復元する
				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("メール情報の復元に失敗しました", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				// メールを組み立てる
				mail := mail.NewMsg()
				if err := mail.From(cfg.Email.SMTP.Username); err != nil {
					logger.Error("差出人を設定できません", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := mail.To(mailMessage.To); err != nil {
					logger.Error("宛先を設定できません", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				// メール種別ごとに本文を作る
				switch mailMessage.Type {
				case "weekly_report":
					tmpl, err := template.ParseFiles("./templates/weekly_report_email.html")
					if err != nil {
						logger.Error("メールテンプレートを読み込めません", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := mail.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
						logger.Error("メール本文を設定できません", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					mail.Subject("StaffSync - 週次シフトチェック")
				default:
					logger.Error("対応していないメール種別です", slog.String("type", mailMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				// メールを送信する
				if err := client.DialAndSend(mail); err != nil {
					logger.Error("メールの送信に失敗しました", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // 再キューする
					continue
				}

				// メッセージを確認する
				_ = msg.Ack(false)
			}
		}
	}()

	// CTRL+C を待つ
	logger.Info("メッセージを待っています...（CTRL+C で終了）")
	<-sigChan

	// 終了処理
	slog.Info("mail worker を停止しています...")
	cancel()
	wg.Wait() // すべての goroutine の完了を待つ
	slog.Info("mail worker を停止しました")
}
