// =============================================================================
// main.go - レポートウォッチャーのエントリーポイント
// =============================================================================
//
// 医療系レポートの公開ページを順番にチェックし、各ページの
// 「バージョン」（最新年 / ハッシュ / 見出しタイトル）をまとめて
// メールで送信するCLIツールです。
//
// 【実行方法】
//
//	./watcher
//
// コマンドライン引数はありません。1回実行すると全ソースを1回ずつ
// チェックし、通知を1回送信して終了します。定期実行はcronや
// EventBridgeなど外部のスケジューラーに任せます。
//
// 【終了コード】
//
//	0: 通知成功（メール未設定で標準出力に表示した場合を含む）
//	1: メール送信失敗
//
// =============================================================================
package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv" // .env ファイル読み込み

	"report-watcher/internal/watcher"
)

func main() {
	// .env ファイルから環境変数を読み込み（存在しない場合は環境変数のみ使用）
	envErr := godotenv.Load()

	cfg := watcher.LoadConfig()
	logger := watcher.NewLogger(os.Stderr, cfg.LogLevel).With("run_id", uuid.NewString())
	if envErr != nil {
		logger.Debug(".env file not loaded, using environment variables only", "error", envErr)
	}
	if !cfg.Email.IsConfigured() {
		logger.Warn("email settings incomplete, report will be printed to stdout")
	}

	runner := watcher.NewRunner(cfg, logger, os.Stdout)
	if _, err := runner.Run(context.Background()); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}
