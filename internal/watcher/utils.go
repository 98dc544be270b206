// =============================================================================
// utils.go - ユーティリティ関数
// =============================================================================
//
// 【このファイルで提供する機能】
//   - 文字列操作: 空白正規化
//   - ログ出力:   slogロガーの生成（標準エラー出力）
//
// 【なぜ標準エラー出力を使うか】
//   メール未設定時はスナップショットを標準出力に表示するため、
//   ログメッセージは標準エラー出力に分けて出力する
//
// =============================================================================
package watcher

import (
	"io"
	"log/slog"
	"strings"
)

// normalizeWhitespace は文字列内の連続する空白（改行を含む）を単一スペースに正規化する
//
// 使用例:
//
//	normalizeWhitespace("  Report   Title\n2025 ")  // "Report Title 2025"
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NewLogger はレベル指定付きのテキストロガーを作成する
func NewLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLogLevel(level)}))
}

// parseLogLevel はLOG_LEVELの値をslog.Levelに変換する
//
// 空文字列や不正な値はInfoとして扱う。
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// discardLogger は何も出力しないロガー（Loggerが未設定の場合に使用）
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
