// =============================================================================
// fetch.go - ページ取得（Page Fetcher）
// =============================================================================
//
// URLからページ本文を取得し、UTF-8のテキストとして返す。
//
// 【処理の流れ】
//  1. User-Agent付きでGETリクエスト（タイムアウト付き）
//  2. 2xx以外のステータスはFetchError
//  3. Content-Typeに応じて本文をデコード
//     - application/pdf: PDFからテキストを抽出
//     - それ以外:        charset（ヘッダー / <meta>）に従ってUTF-8に変換
//
// 【注意】
//   リトライは行わない。1つのソースが遅い場合、後続のソースは
//   最大でタイムアウト分だけ待たされる（実行は逐次のため）。
//
// =============================================================================
package watcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"golang.org/x/net/html/charset"
)

// PageFetcher はURLからページ本文を取得する
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// FetchError はページ取得の失敗（ネットワークエラー、タイムアウト、2xx以外）を表す
type FetchError struct {
	URL        string
	StatusCode int // HTTPステータス（ネットワークエラーの場合は0）
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP %d %s for url: %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// =============================================================================
// HTTPFetcher
// =============================================================================

// HTTPFetcher はnet/httpでページを取得するPageFetcher
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher は新しいHTTPFetcherを作成する
func NewHTTPFetcher(cfg FetchConfig) *HTTPFetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:           http.ProxyFromEnvironment,
				MaxIdleConns:    10,
				IdleConnTimeout: 90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Fetch はURLのページ本文を取得する
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: fmt.Errorf("request creation failed: %w", err)}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        errors.New(resp.Status),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: fmt.Errorf("read body failed: %w", err)}
	}

	text, err := decodeBody(raw, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	return text, nil
}

// =============================================================================
// 本文デコード
// =============================================================================

// decodeBody はContent-Typeに従って本文をUTF-8テキストに変換する
func decodeBody(raw []byte, contentType string) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType == "application/pdf" {
		return extractTextFromPDF(raw)
	}

	// 空の本文も正常なページとして扱う
	if len(raw) == 0 {
		return "", nil
	}

	enc, _, _ := charset.DetermineEncoding(raw, contentType)
	b, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode body failed: %w", err)
	}
	return string(b), nil
}

// extractTextFromPDF はPDFの全ページからテキストを抽出する
//
// 壊れたPDFでpdfパッケージがpanicする場合があるため、recoverでエラーに変換する。
func extractTextFromPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to parse PDF: %v", r)
		}
	}()

	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= pdfReader.NumPage(); i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
