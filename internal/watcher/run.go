// =============================================================================
// run.go - 実行制御（Run Orchestrator）
// =============================================================================
//
// 全ソースを順番にチェックし、結果をレポートにまとめて1回だけ通知する。
//
// 【処理の流れ】
//  1. レジストリ順に1ソースずつ（並行処理なし）
//     a. ページ取得
//     b. バージョン抽出
//     c. 成功: "- {name}: {version}  ({url})" を成功リストに追加
//     d. 失敗: "[ERROR] {id}: {error}" をエラーリストに追加して次へ
//  2. 全ソースが失敗した場合: "ALL CHECKS FAILED" の通知を送信
//  3. それ以外: スナップショット（＋エラーセクション）を送信
//
// 【重要】
//   1ソースの失敗で実行全体が止まることはない。
//   通知は必ず1回だけ送信される（0回や2回はない）。
//   前回の実行結果は保存しないため、差分検出は行わない。
//
// =============================================================================
package watcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Runner は1回分のチェックを実行する
type Runner struct {
	Sources  []Source
	Fetcher  PageFetcher
	Notifier Notifier
	Logger   *slog.Logger
}

// NewRunner は設定から既定のソース一覧・HTTPFetcher・Notifierを組み立てる
//
// out はメール未設定時にスナップショットを表示する出力先。
func NewRunner(cfg Config, logger *slog.Logger, out io.Writer) *Runner {
	return &Runner{
		Sources:  DefaultSources(),
		Fetcher:  NewHTTPFetcher(cfg.Fetch),
		Notifier: NewNotifier(cfg.Email, out),
		Logger:   logger,
	}
}

// Check は1ソースを取得・抽出して結果を返す
func (r *Runner) Check(ctx context.Context, src Source) Result {
	content, err := r.Fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return Result{SourceID: src.ID, Err: err}
	}
	return Result{SourceID: src.ID, Version: Extract(content, src.Mode)}
}

// Collect は全ソースをレジストリ順にチェックしてレポートを作成する
func (r *Runner) Collect(ctx context.Context) *Report {
	logger := r.logger()
	report := &Report{}

	for _, src := range r.Sources {
		res := r.Check(ctx, src)
		report.Add(src, res)

		if !res.OK() {
			var fe *FetchError
			attrs := []any{"source", src.ID, "error", res.Err}
			if errors.As(res.Err, &fe) && fe.StatusCode != 0 {
				attrs = append(attrs, "status", fe.StatusCode)
			}
			logger.Error("source check failed", attrs...)
			continue
		}
		logger.Info("source checked", "source", src.ID, "mode", modeName(src.Mode), "version", res.Version)
	}

	if len(report.Errors) > 0 {
		logger.Warn("some sources failed",
			"failed", len(report.Errors),
			"succeeded", len(report.Lines),
			"total", len(r.Sources))
	}
	return report
}

// Run は全ソースをチェックし、レポートを1回だけ通知する
//
// 通知の失敗はそのまま返す（リトライしない）。
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := r.Collect(ctx)

	subject := report.Subject()
	if report.AllFailed() {
		r.logger().Error("all sources failed", "failed", len(report.Errors))
	}

	if err := r.Notifier.Notify(ctx, subject, report.Body()); err != nil {
		return report, fmt.Errorf("deliver report: %w", err)
	}
	r.logger().Info("report delivered", "subject", subject)
	return report, nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return discardLogger()
	}
	return r.Logger
}

func modeName(m Mode) string {
	if m == nil {
		return ModeNameHash
	}
	return m.Name()
}
