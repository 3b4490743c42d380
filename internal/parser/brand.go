package parser

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cardstash/giftcard-ocr-engine/internal/models"
)

// defaultBrands is the built-in merchant dictionary. Order is significant:
// the first matching entry wins, so overlapping aliases (Google Play before a
// bare PLAY, Best Buy before BUY) sit ahead of anything they could shadow.
var defaultBrands = []models.BrandEntry{
	// Retail
	{Name: "Target", Aliases: []string{"TARGET", "BULLSEYE"}},
	{Name: "Walmart", Aliases: []string{"WALMART", "WAL-MART", "WAL MART"}},
	{Name: "Amazon", Aliases: []string{"AMAZON", "AMZN"}},
	{Name: "Best Buy", Aliases: []string{"BEST BUY", "BESTBUY"}},
	{Name: "Home Depot", Aliases: []string{"HOME DEPOT", "HOMEDEPOT"}},
	{Name: "Lowe's", Aliases: []string{"LOWE'S", "LOWES"}},
	{Name: "Costco", Aliases: []string{"COSTCO"}},
	{Name: "Macy's", Aliases: []string{"MACY'S", "MACYS"}},
	{Name: "Nordstrom", Aliases: []string{"NORDSTROM"}},
	{Name: "Kohl's", Aliases: []string{"KOHL'S", "KOHLS"}},
	{Name: "TJ Maxx", Aliases: []string{"TJ MAXX", "TJMAXX", "T.J. MAXX"}},
	{Name: "Sephora", Aliases: []string{"SEPHORA"}},
	{Name: "Ulta", Aliases: []string{"ULTA"}},
	{Name: "Nike", Aliases: []string{"NIKE"}},
	{Name: "Old Navy", Aliases: []string{"OLD NAVY"}},
	{Name: "REI", Aliases: []string{"REI CO-OP", "REI"}},

	// Dining
	{Name: "Starbucks", Aliases: []string{"STARBUCKS", "STARBUCKS COFFEE"}},
	{Name: "McDonald's", Aliases: []string{"MCDONALD'S", "MCDONALDS"}},
	{Name: "Chipotle", Aliases: []string{"CHIPOTLE"}},
	{Name: "Subway", Aliases: []string{"SUBWAY"}},
	{Name: "Dunkin'", Aliases: []string{"DUNKIN' DONUTS", "DUNKIN DONUTS", "DUNKIN"}},
	{Name: "Panera Bread", Aliases: []string{"PANERA"}},
	{Name: "Olive Garden", Aliases: []string{"OLIVE GARDEN"}},
	{Name: "Chick-fil-A", Aliases: []string{"CHICK-FIL-A", "CHICKFILA", "CHICK FIL A"}},
	{Name: "Domino's", Aliases: []string{"DOMINO'S", "DOMINOS"}},
	{Name: "Applebee's", Aliases: []string{"APPLEBEE'S", "APPLEBEES"}},

	// Tech and gaming. Google Play and App Store aliases come before the bare
	// APPLE entry so storefront wording wins over the company name.
	{Name: "Google Play", Aliases: []string{"GOOGLE PLAY", "PLAY STORE", "GOOGLE"}},
	{Name: "Apple", Aliases: []string{"APP STORE", "ITUNES", "APPLE"}},
	{Name: "Xbox", Aliases: []string{"XBOX", "MICROSOFT"}},
	{Name: "PlayStation", Aliases: []string{"PLAYSTATION", "PSN"}},
	{Name: "Nintendo", Aliases: []string{"NINTENDO", "ESHOP"}},
	{Name: "Steam", Aliases: []string{"STEAM"}},
	{Name: "Roblox", Aliases: []string{"ROBLOX"}},
	{Name: "GameStop", Aliases: []string{"GAMESTOP", "GAME STOP"}},

	// Streaming
	{Name: "Netflix", Aliases: []string{"NETFLIX"}},
	{Name: "Spotify", Aliases: []string{"SPOTIFY"}},
	{Name: "Hulu", Aliases: []string{"HULU"}},
	{Name: "Disney+", Aliases: []string{"DISNEY+", "DISNEY PLUS", "DISNEY"}},

	// Payment networks
	{Name: "American Express", Aliases: []string{"AMERICAN EXPRESS", "AMEX"}},
	{Name: "Mastercard", Aliases: []string{"MASTERCARD"}},
	{Name: "Visa", Aliases: []string{"VISA"}},
	{Name: "Discover", Aliases: []string{"DISCOVER"}},
}

// fuzzyBrandThreshold is the minimum Jaro-Winkler similarity between a line
// and an alias for a fuzzy match (OCR misreads like STARBUCK5).
const fuzzyBrandThreshold = 0.85

// Fallback lines that describe the card rather than name a merchant.
var brandStopWords = map[string]struct{}{
	"GIFT": {}, "CARD": {}, "VALUE": {}, "BALANCE": {},
	"THE": {}, "FOR": {}, "A": {},
}

// matchBrand resolves the merchant. The first five lines are searched before
// the full text because gift cards print the brand at the top; an exact alias
// hit wins, then a fuzzy pass absorbs OCR misreads, then the first line is
// title-cased as a best guess.
func (p *Parser) matchBrand(text string, lines []string) string {
	head := strings.Join(firstN(lines, 5), " ")
	for _, entry := range p.brands {
		for _, alias := range entry.Aliases {
			if strings.Contains(head, alias) {
				return entry.Name
			}
		}
	}
	for _, entry := range p.brands {
		for _, alias := range entry.Aliases {
			if strings.Contains(text, alias) {
				return entry.Name
			}
		}
	}
	if name := p.fuzzyBrandMatch(lines); name != "" {
		return name
	}
	return fallbackBrand(lines)
}

// fuzzyBrandMatch compares the first five lines against every alias and keeps
// the best score at or above the threshold.
func (p *Parser) fuzzyBrandMatch(lines []string) string {
	jw := metrics.NewJaroWinkler()
	var best string
	var bestScore float64
	for _, line := range firstN(lines, 5) {
		for _, entry := range p.brands {
			for _, alias := range entry.Aliases {
				score := strutil.Similarity(strings.ToLower(line), strings.ToLower(alias), jw)
				if score >= fuzzyBrandThreshold && score > bestScore {
					best, bestScore = entry.Name, score
				}
			}
		}
	}
	return best
}

// fallbackBrand title-cases the first line as a best-guess brand when it looks
// like a name: not too short, not too long, and not card boilerplate.
func fallbackBrand(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	first := lines[0]
	if len(first) < 3 || len(first) > 24 {
		return ""
	}
	if _, stop := brandStopWords[first]; stop {
		return ""
	}
	return cases.Title(language.English).String(strings.ToLower(first))
}

func firstN(lines []string, n int) []string {
	if len(lines) < n {
		return lines
	}
	return lines[:n]
}
