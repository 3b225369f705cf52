package model

import "fmt"

// Index identifies a supported market index. Keep these values stable;
// they are used as CLI selectors and in ticker-list files.
type Index string

const (
	IndexSP500       Index = "sp500"
	IndexNasdaq100   Index = "nasdaq100"
	IndexDowJones    Index = "dowjones"
	IndexRussell1000 Index = "russell1000"
	IndexTaiwan50    Index = "taiwan50"
)

// AllIndices returns the supported indices in display order.
func AllIndices() []Index {
	return []Index{IndexSP500, IndexNasdaq100, IndexDowJones, IndexRussell1000, IndexTaiwan50}
}

// DisplayName returns a human-readable name for the index.
func (i Index) DisplayName() string {
	switch i {
	case IndexSP500:
		return "S&P 500"
	case IndexNasdaq100:
		return "NASDAQ-100"
	case IndexDowJones:
		return "Dow Jones Industrial Average"
	case IndexRussell1000:
		return "Russell 1000"
	case IndexTaiwan50:
		return "FTSE TWSE Taiwan 50"
	}
	return string(i)
}

// ParseIndex validates an index selector string.
func ParseIndex(s string) (Index, error) {
	switch Index(s) {
	case IndexSP500, IndexNasdaq100, IndexDowJones, IndexRussell1000, IndexTaiwan50:
		return Index(s), nil
	}
	return "", fmt.Errorf("invalid index %q (choose from: sp500, nasdaq100, dowjones, russell1000, taiwan50): %w",
		s, ErrInvalidParameter)
}
