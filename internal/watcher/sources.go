// =============================================================================
// sources.go - 監視ソース一覧（Source Registry）
// =============================================================================
//
// 監視対象のレポートページをコンパイル時に固定したリスト。
// 外部ファイルからは読み込まない。
//
// 【モードの選び方】
//   - latest_year:   ページ内の最新年（MinYear以上）を拾う。アーカイブ年のノイズをMinYearで除外
//   - hash:          構造化された年やタイトルが取れないページ向け
//   - kaufman_title: 最初の<h1>に日付入りのレポート名が載るページ向け
//
// =============================================================================
package watcher

var defaultSources = []Source{
	{
		ID:   "cms_nhe",
		Name: "CMS National Health Expenditure Projections",
		URL:  "https://www.cms.gov/data-research/statistics-trends-and-reports/national-health-expenditure-data/projected",
		Mode: LatestYear{MinYear: 2015},
	},
	{
		ID:   "kff_ehbs",
		Name: "KFF Employer Health Benefits Survey",
		URL:  "https://www.kff.org/series/employer-health-benefits-survey/",
		Mode: LatestYear{MinYear: 2015},
	},
	{
		ID:   "trilliant_trends",
		Name: "Trilliant – Health Economy Trends Report",
		// レポート一覧ページに差し替える場合:
		// https://www.trillianthealth.com/market-research/reports
		URL:  "https://www.trillianthealth.com/market-research/reports/2025-health-economy-trends",
		Mode: Hash{},
	},
	{
		ID:   "kaufman_flash",
		Name: "Kaufman Hall National Hospital Flash Report",
		URL:  "https://www.kaufmanhall.com/insights-reports/national-hospital-flash-report",
		Mode: KaufmanTitle{},
	},
	{
		ID:   "milliman_mmi",
		Name: "Milliman Medical Index",
		URL:  "https://www.milliman.com/en/insights/milliman-medical-index-archive",
		Mode: LatestYear{MinYear: 2010},
	},
	{
		ID:   "hcci_cost_util",
		Name: "HCCI – Health Care Cost and Utilization Report",
		URL:  "https://healthcarecostinstitute.org/research/annual-reports",
		Mode: LatestYear{MinYear: 2010},
	},
	{
		ID:   "fair_health_indicators",
		Name: "FAIR Health – Healthcare Indicators",
		URL:  "https://www.fairhealth.org/publications/white-papers",
		Mode: LatestYear{MinYear: 2015},
	},
	{
		ID:   "bgh_employer_strategy",
		Name: "Business Group on Health – Large Employer Survey",
		URL:  "https://www.businessgrouphealth.org/en/topics/employer-survey",
		Mode: LatestYear{MinYear: 2015},
	},
	{
		ID:   "commonwealth_intl_survey",
		Name: "Commonwealth Fund – International Health Policy Survey",
		URL:  "https://www.commonwealthfund.org/international-health-policy-survey",
		Mode: LatestYear{MinYear: 2010},
	},
	{
		ID:   "deloitte_us_outlook",
		Name: "Deloitte – US Health Care Outlook",
		URL:  "https://www2.deloitte.com/us/en/pages/life-sciences-and-health-care/articles/us-health-care-industry-outlook.html",
		Mode: LatestYear{MinYear: 2015},
	},
	{
		ID:   "pwc_top_issues",
		Name: "PwC – Top Health Industry Issues",
		URL:  "https://www.pwc.com/us/en/industries/health-industries/library/top-health-industry-issues.html",
		Mode: LatestYear{MinYear: 2015},
	},
	{
		ID:   "aha_fast_facts",
		Name: "AHA – Fast Facts on U.S. Hospitals",
		URL:  "https://www.aha.org/statistics/fast-facts-us-hospitals",
		Mode: LatestYear{MinYear: 2010},
	},
	{
		ID:   "rand_hospital_prices",
		Name: "RAND – Hospital Price Transparency Studies",
		URL:  "https://www.rand.org/health-care/projects/hospital-price-transparency.html",
		Mode: LatestYear{MinYear: 2010},
	},
}

// DefaultSources は監視ソース一覧のコピーを返す
//
// 呼び出し側が変更してもレジストリ本体には影響しない。
func DefaultSources() []Source {
	return append([]Source(nil), defaultSources...)
}
