package data

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"stock-screener/internal/model"

	"github.com/PuerkitoBio/goquery"
)

// IndexClient scrapes index constituent lists from the Wikipedia
// reference tables. The page, table position and symbol column are
// hard-coded per index; they track the layout of the source articles and
// need updating if Wikipedia restructures a page.
type IndexClient struct {
	BaseURL   string
	Client    *http.Client
	UserAgent string
}

// NewIndexClient creates a constituents client.
// If baseURL is empty, defaults to "https://en.wikipedia.org".
func NewIndexClient(baseURL string) *IndexClient {
	if baseURL == "" {
		baseURL = "https://en.wikipedia.org"
	}
	return &IndexClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	}
}

type indexSource struct {
	Page   string // article path
	Table  int    // zero-based position among the page's <table> elements
	Column string // header text of the symbol column
}

// Table positions count every <table> on the page, infoboxes and
// sidebars included, not just the wikitable-classed ones.
var indexSources = map[model.Index]indexSource{
	model.IndexSP500:       {Page: "/wiki/List_of_S%26P_500_companies", Table: 0, Column: "Symbol"},
	model.IndexNasdaq100:   {Page: "/wiki/NASDAQ-100", Table: 4, Column: "Ticker"},
	model.IndexDowJones:    {Page: "/wiki/Dow_Jones_Industrial_Average", Table: 1, Column: "Symbol"},
	model.IndexRussell1000: {Page: "/wiki/Russell_1000_Index", Table: 2, Column: "Symbol"},
	model.IndexTaiwan50:    {Page: "/wiki/Template:FTSE_TWSE_Taiwan_50", Table: 0},
}

// Taiwan 50 constituents are embedded as "TWSE: nnnn" references rather
// than a symbol column.
var twseRe = regexp.MustCompile(`TWSE:\s?(\d+)`)

// IndexSourceURL returns the public reference page an index's
// constituents are scraped from.
func IndexSourceURL(index model.Index) string {
	src, ok := indexSources[index]
	if !ok {
		return ""
	}
	return "https://en.wikipedia.org" + src.Page
}

// Tickers fetches the ticker universe for an index.
func (c *IndexClient) Tickers(ctx context.Context, index model.Index) ([]string, error) {
	src, ok := indexSources[index]
	if !ok {
		return nil, fmt.Errorf("invalid index %q: %w", index, model.ErrInvalidParameter)
	}

	doc, err := c.fetchPage(ctx, src.Page)
	if err != nil {
		return nil, err
	}

	tables := doc.Find("table")
	if src.Table >= tables.Length() {
		return nil, fmt.Errorf("reference table %d not found on %s (page has %d tables): %w",
			src.Table, src.Page, tables.Length(), model.ErrDataUnavailable)
	}
	table := tables.Eq(src.Table)

	var tickers []string
	if index == model.IndexTaiwan50 {
		tickers = extractTWSETickers(table)
	} else {
		tickers, err = extractColumn(table, src.Column)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src.Page, err)
		}
	}

	if len(tickers) == 0 {
		return nil, fmt.Errorf("no tickers found for index %s: %w", index, model.ErrDataUnavailable)
	}

	log.Printf("[Index] Fetched %d tickers for %s", len(tickers), index)
	return tickers, nil
}

func (c *IndexClient) fetchPage(ctx context.Context, page string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+page, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	startTime := time.Now()
	resp, err := c.Client.Do(req)
	duration := time.Since(startTime)
	if err != nil {
		log.Printf("[Index] Request failed: %v (page=%s, duration: %v)", err, page, duration)
		return nil, fmt.Errorf("failed to fetch %s: %w", page, err)
	}
	defer resp.Body.Close()

	log.Printf("[Index] Response: %d %s (page=%s, duration: %v)",
		resp.StatusCode, resp.Status, page, duration)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s returned status %d: %w",
			page, resp.StatusCode, model.ErrDataUnavailable)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", page, err)
	}
	return doc, nil
}

// extractColumn pulls the named column out of a constituents table.
func extractColumn(table *goquery.Selection, column string) ([]string, error) {
	colIdx := -1
	table.Find("tr").First().Find("th").EachWithBreak(func(i int, th *goquery.Selection) bool {
		if strings.EqualFold(strings.TrimSpace(th.Text()), column) {
			colIdx = i
			return false
		}
		return true
	})
	if colIdx < 0 {
		return nil, fmt.Errorf("column %q not found in reference table: %w",
			column, model.ErrDataUnavailable)
	}

	var tickers []string
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if i == 0 {
			return // header row
		}
		cell := tr.Find("td").Eq(colIdx)
		ticker := strings.TrimSpace(cell.Text())
		if ticker != "" {
			tickers = append(tickers, ticker)
		}
	})
	return tickers, nil
}

// extractTWSETickers scans every cell for TWSE stock numbers and maps
// them to Yahoo's ".TW" suffix form.
func extractTWSETickers(table *goquery.Selection) []string {
	var tickers []string
	table.Find("td").Each(func(_ int, td *goquery.Selection) {
		for _, m := range twseRe.FindAllStringSubmatch(td.Text(), -1) {
			tickers = append(tickers, m[1]+".TW")
		}
	})
	return tickers
}
