// =============================================================================
// types.go - データ構造定義
// =============================================================================
//
// このファイルはレポートウォッチャー全体で使用するデータ構造（型）を定義します。
//
// 【このファイルで定義している型】
//   - Source: 監視対象のWebページ（ID、表示名、URL、抽出モード）
//   - Mode:   バージョン抽出モード（LatestYear / Hash / KaufmanTitle）
//   - Result: 1ソース分のチェック結果（バージョン or エラー）
//   - Report: 1回の実行で生成されるスナップショット
//
// 【初心者向けポイント】
//   - Modeは「閉じた」インターフェース（非公開メソッドisMode()を持つ）
//     パッケージ外から新しいModeを追加できないため、switchで全ケースを網羅できる
//   - 結果は例外ではなくResult型で返す（Errがnilなら成功）
//
// =============================================================================
package watcher

import (
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Mode - バージョン抽出モード
// -----------------------------------------------------------------------------

// モード名（ログ出力・設定用）
const (
	ModeNameLatestYear   = "latest_year"
	ModeNameHash         = "hash"
	ModeNameKaufmanTitle = "kaufman_title"
)

// DefaultMinYear はMinYear未指定時に使う下限年
const DefaultMinYear = 2010

// Mode はページ内容からバージョン文字列を導出する戦略
//
// 実装は LatestYear / Hash / KaufmanTitle の3つのみ。
// 未知のModeが渡された場合、Extract はハッシュ戦略にフォールバックする。
type Mode interface {
	Name() string
	isMode()
}

// LatestYear はページ内の最新年（MinYear以上）をバージョンとする
//
// MinYearが0（未設定）の場合、下限はDefaultMinYear（2010）になる。
// そのため Extract("2005", LatestYear{}) は "unknown-year" を返す。
// 下限なしで判定したい場合はExtractLatestYearを直接使う。
type LatestYear struct {
	MinYear int
}

// Hash はページ内容のSHA-256先頭10文字をバージョンとする
type Hash struct{}

// KaufmanTitle は最初の<h1>見出しのテキストをバージョンとする
type KaufmanTitle struct{}

func (LatestYear) Name() string   { return ModeNameLatestYear }
func (Hash) Name() string         { return ModeNameHash }
func (KaufmanTitle) Name() string { return ModeNameKaufmanTitle }

func (LatestYear) isMode()   {}
func (Hash) isMode()         {}
func (KaufmanTitle) isMode() {}

// minYear は有効な下限年を返す
func (m LatestYear) minYear() int {
	if m.MinYear == 0 {
		return DefaultMinYear
	}
	return m.MinYear
}

// ParseMode はモード名からModeを生成する
//
// 未知のモード名や空文字列はHashとして扱う（前方互換性のため）。
// minYearはlatest_yearの場合のみ使用される。
func ParseMode(name string, minYear int) Mode {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ModeNameLatestYear:
		return LatestYear{MinYear: minYear}
	case ModeNameKaufmanTitle:
		return KaufmanTitle{}
	default:
		return Hash{}
	}
}

// -----------------------------------------------------------------------------
// Source - 監視対象ソース
// -----------------------------------------------------------------------------
//
// 起動時に静的設定（sources.go）から生成され、実行中に変更されることはない。
//
// 【フィールドの説明】
//   ID:   一意な識別子（エラー行に使用、例: "cms_nhe"）
//   Name: 表示名（スナップショット行に使用）
//   URL:  監視するページのURL
//   Mode: バージョン抽出モード
type Source struct {
	ID   string
	Name string
	URL  string
	Mode Mode
}

// -----------------------------------------------------------------------------
// Result - 1ソース分のチェック結果
// -----------------------------------------------------------------------------

// Result はソース1件のチェック結果を表す
//
// Errがnilの場合はVersionが有効、nilでない場合はErrが失敗理由。
type Result struct {
	SourceID string
	Version  string
	Err      error
}

// OK はチェックが成功したかどうかを返す
func (r Result) OK() bool {
	return r.Err == nil
}

// -----------------------------------------------------------------------------
// Report - スナップショット
// -----------------------------------------------------------------------------

// 件名・本文の定型文
const (
	SubjectSnapshot  = "Healthcare report watcher: latest snapshot"
	SubjectAllFailed = "Healthcare report watcher: ALL CHECKS FAILED"

	snapshotIntro  = "Here is the latest snapshot of monitored healthcare reports:\n\n"
	allFailedIntro = "All sources failed to fetch:\n\n"
)

// Report は1回の実行結果（成功行とエラー行）を保持する
//
// 行の順序はレジストリの順序と一致する。
type Report struct {
	Lines  []string // "- {name}: {version}  ({url})"
	Errors []string // "[ERROR] {id}: {error}"
}

// Add は結果をレポートに追記する
func (r *Report) Add(src Source, res Result) {
	if res.OK() {
		r.Lines = append(r.Lines, formatLine(src, res.Version))
		return
	}
	r.Errors = append(r.Errors, formatError(src, res.Err))
}

// AllFailed は全ソースが失敗したかどうかを返す
//
// ソースが0件の場合はfalse（空のスナップショットを送る）。
func (r *Report) AllFailed() bool {
	return len(r.Lines) == 0 && len(r.Errors) > 0
}

// Subject はメール件名を返す
func (r *Report) Subject() string {
	if r.AllFailed() {
		return SubjectAllFailed
	}
	return SubjectSnapshot
}

// Body はプレーンテキストのメール本文を返す
//
// 【出力フォーマット（スナップショット）】
//
//	Here is the latest snapshot of monitored healthcare reports:
//
//	- CMS National Health Expenditure Projections: 2024  (https://...)
//	- Kaufman Hall National Hospital Flash Report: ...  (https://...)
//
//	Errors:
//	[ERROR] kff_ehbs: ...
func (r *Report) Body() string {
	if r.AllFailed() {
		return allFailedIntro + strings.Join(r.Errors, "\n")
	}

	var sb strings.Builder
	sb.WriteString(snapshotIntro)
	sb.WriteString(strings.Join(r.Lines, "\n"))
	if len(r.Errors) > 0 {
		sb.WriteString("\n\nErrors:\n")
		sb.WriteString(strings.Join(r.Errors, "\n"))
	}
	return sb.String()
}

func formatLine(src Source, version string) string {
	return fmt.Sprintf("- %s: %s  (%s)", src.Name, version, src.URL)
}

func formatError(src Source, err error) string {
	return fmt.Sprintf("[ERROR] %s: %v", src.ID, err)
}
