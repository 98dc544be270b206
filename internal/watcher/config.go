// =============================================================================
// config.go - ウォッチャー設定
// =============================================================================
//
// このファイルは環境変数から設定を読み込み、Config構造体にまとめます。
// 設定はプロセス起動時に一度だけ読み込み、各コンポーネントに明示的に渡します。
// 実行中に環境変数を直接参照することはありません。
//
// 【設定グループ】
//   - FetchConfig: ページ取得設定
//   - EmailConfig: SMTP設定
//
// 【環境変数】
//
//	SMTP_HOST     - SMTPサーバー（デフォルト: smtp.gmail.com）
//	SMTP_PORT     - SMTPポート（デフォルト: 587）
//	SMTP_USER     - SMTPユーザー名
//	SMTP_PASS     - SMTPパスワード（Gmailの場合はアプリパスワード）
//	EMAIL_FROM    - 送信元メールアドレス
//	EMAIL_TO      - 送信先メールアドレス（カンマ区切りで複数可）
//	FETCH_TIMEOUT - ページ取得タイムアウト（デフォルト: 30s）
//	USER_AGENT    - User-Agentヘッダー
//	LOG_LEVEL     - debug / info / warn / error（デフォルト: info）
//
// SMTP_USER, SMTP_PASS, EMAIL_FROM, EMAIL_TO のいずれかが未設定の場合、
// メールは送信せず標準出力に表示する。
//
// =============================================================================
package watcher

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// デフォルト値
const (
	DefaultSMTPHost     = "smtp.gmail.com"
	DefaultSMTPPort     = 587
	DefaultFetchTimeout = 30 * time.Second
	DefaultUserAgent    = "Mozilla/5.0 (compatible; report-watcher/1.0; +https://example.invalid)"
)

// 環境変数キー
const (
	envSMTPHost     = "SMTP_HOST"
	envSMTPPort     = "SMTP_PORT"
	envSMTPUser     = "SMTP_USER"
	envSMTPPass     = "SMTP_PASS"
	envEmailFrom    = "EMAIL_FROM"
	envEmailTo      = "EMAIL_TO"
	envFetchTimeout = "FETCH_TIMEOUT"
	envUserAgent    = "USER_AGENT"
	envLogLevel     = "LOG_LEVEL"
)

// =============================================================================
// 設定構造体
// =============================================================================

// Config はウォッチャーの全設定を保持する
type Config struct {
	Fetch    FetchConfig
	Email    EmailConfig
	LogLevel string
}

// FetchConfig はページ取得に関する設定
type FetchConfig struct {
	UserAgent string        // HTTPリクエスト時のUser-Agentヘッダー
	Timeout   time.Duration // 1リクエストあたりのタイムアウト
}

// EmailConfig はSMTP送信に関する設定
type EmailConfig struct {
	Host     string   // SMTPサーバーホスト
	Port     int      // SMTPポート
	Username string   // SMTPユーザー名
	Password string   // SMTPパスワード
	From     string   // 送信元メールアドレス
	To       []string // 送信先メールアドレス（複数可）
}

// IsConfigured はメール送信に必要な設定が揃っているかを返す
func (c EmailConfig) IsConfigured() bool {
	return c.Username != "" && c.Password != "" && c.From != "" && len(c.To) > 0
}

// =============================================================================
// 読み込み
// =============================================================================

// LoadConfig は環境変数から設定を読み込む
func LoadConfig() Config {
	v := viper.New()
	v.AutomaticEnv()
	return configFromViper(v)
}

// configFromViper はviperインスタンスからConfigを構築する
//
// テストでは環境変数の代わりにv.Set()で値を与える。
func configFromViper(v *viper.Viper) Config {
	v.SetDefault(envSMTPHost, DefaultSMTPHost)
	v.SetDefault(envSMTPPort, DefaultSMTPPort)
	v.SetDefault(envFetchTimeout, DefaultFetchTimeout)
	v.SetDefault(envUserAgent, DefaultUserAgent)
	v.SetDefault(envLogLevel, "info")

	port := v.GetInt(envSMTPPort)
	if port <= 0 {
		port = DefaultSMTPPort
	}
	timeout := v.GetDuration(envFetchTimeout)
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	return Config{
		Fetch: FetchConfig{
			UserAgent: v.GetString(envUserAgent),
			Timeout:   timeout,
		},
		Email: EmailConfig{
			Host:     v.GetString(envSMTPHost),
			Port:     port,
			Username: v.GetString(envSMTPUser),
			Password: v.GetString(envSMTPPass),
			From:     v.GetString(envEmailFrom),
			To:       splitAddresses(v.GetString(envEmailTo)),
		},
		LogLevel: v.GetString(envLogLevel),
	}
}

// splitAddresses はカンマ区切りのメールアドレスを分割する
func splitAddresses(raw string) []string {
	var out []string
	for _, addr := range strings.Split(raw, ",") {
		addr = strings.TrimSpace(addr)
		if addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
