// =============================================================================
// Lambda: watch-reports
// =============================================================================
//
// 全ソースをチェックし、スナップショットをメール送信するLambda関数
// （EventBridgeのスケジュールで定期実行する想定）
//
// 環境変数:
//   - SMTP_HOST:     SMTPサーバー (デフォルト: smtp.gmail.com)
//   - SMTP_PORT:     SMTPポート (デフォルト: 587)
//   - SMTP_USER:     SMTPユーザー名
//   - SMTP_PASS:     SMTPパスワード
//   - EMAIL_FROM:    送信元メールアドレス
//   - EMAIL_TO:      送信先メールアドレス
//   - FETCH_TIMEOUT: ページ取得タイムアウト (デフォルト: 30s)
//
// メール設定が不完全な場合はCloudWatch Logs（標準出力）に内容を出力する。
//
// =============================================================================
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"

	"report-watcher/internal/watcher"
)

// Response はLambdaレスポンス
type Response struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	RunID      string `json:"runId"`
	Succeeded  int    `json:"succeeded"`
	Failed     int    `json:"failed"`
	Subject    string `json:"subject,omitempty"`
}

// Handler はLambdaのメインハンドラー
func Handler(ctx context.Context, event interface{}) (Response, error) {
	runID := uuid.NewString()

	cfg := watcher.LoadConfig()
	logger := watcher.NewLogger(os.Stderr, cfg.LogLevel).With("run_id", runID)
	logger.Info("starting watch-reports Lambda")

	runner := watcher.NewRunner(cfg, logger, os.Stdout)
	report, err := runner.Run(ctx)
	resp := buildResponse(runID, report)
	if err != nil {
		logger.Error("run failed", "error", err)
		resp.StatusCode = 500
		resp.Message = err.Error()
		return resp, err
	}
	return resp, nil
}

// buildResponse はレポートからレスポンスを組み立てる
func buildResponse(runID string, report *watcher.Report) Response {
	resp := Response{StatusCode: 200, RunID: runID}
	if report == nil {
		return resp
	}

	resp.Succeeded = len(report.Lines)
	resp.Failed = len(report.Errors)
	resp.Subject = report.Subject()
	resp.Message = fmt.Sprintf("Checked %d source(s): %d ok, %d failed", resp.Succeeded+resp.Failed, resp.Succeeded, resp.Failed)
	return resp
}

func main() {
	lambda.Start(Handler)
}
