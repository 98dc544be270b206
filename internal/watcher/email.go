// =============================================================================
// email.go - 通知（Notifier）
// =============================================================================
//
// スナップショットをメールで送信する。
// メール設定が揃っていない場合は、送信内容を標準出力に表示する。
//
// =============================================================================
// 【処理の流れ】
// =============================================================================
//
// 1. 件名と本文を受け取る
// 2. RFC 5322準拠のメールメッセージを構築
// 3. SMTP（STARTTLS + PLAIN認証）で送信
//
// 【注意】
//   送信失敗はリトライせず、そのまま呼び出し元に返す。
//   （最後のステップなので、失敗した場合はプロセスが異常終了する）
//
// =============================================================================
// 【初心者向けポイント】
// =============================================================================
//
// - smtp.SendMail はサーバーが対応していれば自動でSTARTTLSを使う
// - Gmail SMTPはポート587（STARTTLS）を使用
// - Gmailの場合、SMTP_PASSには通常のパスワードではなくアプリパスワードを設定する
//
// =============================================================================
package watcher

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net"
	"net/smtp"
	"os"
	"strconv"
	"strings"
	"time"
)

// Notifier は件名と本文を配信する
type Notifier interface {
	Notify(ctx context.Context, subject, body string) error
}

// NewNotifier は設定に応じたNotifierを返す
//
// メール設定が不完全な場合はStdoutNotifierを返す（実行を失敗させない）。
func NewNotifier(cfg EmailConfig, out io.Writer) Notifier {
	if !cfg.IsConfigured() {
		return &StdoutNotifier{Out: out}
	}
	return NewEmailNotifier(cfg)
}

// =============================================================================
// StdoutNotifier
// =============================================================================

// StdoutNotifier は送信内容を出力先に表示するだけのNotifier
type StdoutNotifier struct {
	Out io.Writer // nilの場合はos.Stdout
}

// Notify は件名と本文を出力する
func (n *StdoutNotifier) Notify(_ context.Context, subject, body string) error {
	out := n.Out
	if out == nil {
		out = os.Stdout
	}
	_, err := fmt.Fprintf(out,
		"Email settings not fully configured. Here's what would be sent:\nSUBJECT: %s\n%s\n",
		subject, body)
	return err
}

// =============================================================================
// EmailNotifier
// =============================================================================

// sendMailFunc はsmtp.SendMailと同じシグネチャ
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailNotifier はSMTPでメールを送信するNotifier
type EmailNotifier struct {
	config   EmailConfig
	sendMail sendMailFunc
	now      func() time.Time
}

// NewEmailNotifier は新しいメール送信者を作成する
func NewEmailNotifier(cfg EmailConfig) *EmailNotifier {
	return &EmailNotifier{
		config:   cfg,
		sendMail: smtp.SendMail,
		now:      time.Now,
	}
}

// Notify はメールを1通送信する
func (es *EmailNotifier) Notify(ctx context.Context, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := es.buildEmailMessage(subject, body)

	auth := smtp.PlainAuth("", es.config.Username, es.config.Password, es.config.Host)
	addr := net.JoinHostPort(es.config.Host, strconv.Itoa(es.config.Port))

	if err := es.sendMail(addr, auth, es.config.From, es.config.To, msg); err != nil {
		return fmt.Errorf("SMTP send via %s failed: %w", addr, err)
	}
	return nil
}

// buildEmailMessage はRFC 5322準拠のメールメッセージを構築する
//
// 【RFC 5322フォーマット】
//
//	From: sender@example.com\r\n
//	To: recipient@example.com\r\n
//	Subject: メール件名\r\n
//	Content-Type: text/plain; charset=UTF-8\r\n
//	\r\n
//	メール本文...
func (es *EmailNotifier) buildEmailMessage(subject, body string) []byte {
	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("From: %s\r\n", es.config.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(es.config.To, ", ")))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject)))
	msg.WriteString(fmt.Sprintf("Date: %s\r\n", es.now().Format(time.RFC1123Z)))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n") // ヘッダーと本文の区切り
	msg.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))

	return []byte(msg.String())
}
