// =============================================================================
// extract.go - バージョン抽出（Version Extractor）
// =============================================================================
//
// ページ内容と抽出モードから、ページの「現在の状態」を表す短い文字列を作る。
//
// 【3つの戦略】
//   - LatestYear:   2000〜2049の4桁の年を全て拾い、MinYear以上の最大値を返す
//                   該当なしの場合は "unknown-year"
//   - Hash:         SHA-256の先頭10文字（16進数）
//   - KaufmanTitle: 最初の<h1>のテキスト（空白を正規化）
//                   見出しがない・空の場合はHashにフォールバック
//
// 【注意】
//   どの戦略もエラーを返さない。期待した構造がない場合は
//   センチネル値かフォールバックで処理する。
//
// =============================================================================
package watcher

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// UnknownYear はMinYear以上の年が見つからなかった場合のバージョン
const UnknownYear = "unknown-year"

// hashLength はHash戦略で返す16進数の文字数
const hashLength = 10

// 2000〜2049
var reYear = regexp.MustCompile(`20[0-4][0-9]`)

// Extract はページ内容からモードに応じたバージョン文字列を返す
func Extract(content string, mode Mode) string {
	switch m := mode.(type) {
	case LatestYear:
		if year, ok := ExtractLatestYear(content, m.minYear()); ok {
			return strconv.Itoa(year)
		}
		return UnknownYear
	case KaufmanTitle:
		if title, ok := ExtractKaufmanTitle(content); ok {
			return title
		}
		return HashPage(content)
	case Hash:
		return HashPage(content)
	default:
		// 未知のモードはハッシュで代用する
		return HashPage(content)
	}
}

// ExtractLatestYear はcontent中の年のうちminYear以上の最大値を返す
//
// 該当する年がない場合はfalseを返す。
func ExtractLatestYear(content string, minYear int) (int, bool) {
	years := map[int]bool{}
	for _, m := range reYear.FindAllString(content, -1) {
		y, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		years[y] = true
	}

	latest, found := 0, false
	for y := range years {
		if y < minYear {
			continue
		}
		if !found || y > latest {
			latest, found = y, true
		}
	}
	return latest, found
}

// HashPage はcontentのSHA-256ハッシュの先頭10文字を返す
func HashPage(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])[:hashLength]
}

// ExtractKaufmanTitle は最初の<h1>のテキストを空白正規化して返す
//
// 見出しがない、またはテキストが空の場合はfalseを返す。
func ExtractKaufmanTitle(content string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", false
	}

	title := normalizeWhitespace(doc.Find("h1").First().Text())
	if title == "" {
		return "", false
	}
	return title, true
}
