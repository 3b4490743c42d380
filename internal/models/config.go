package models

// BrandEntry maps a canonical merchant name to the text aliases that identify it
// in OCR output. Table order is significant: the first matching entry wins, so
// more specific aliases belong before generic ones.
type BrandEntry struct {
	Name    string   `yaml:"name" json:"name"`
	Aliases []string `yaml:"aliases" json:"aliases"`
}

// Config represents the parser configuration. The zero value means "use the
// built-in defaults"; any field left at zero keeps its default.
type Config struct {
	// Accepted expiration year window (inclusive). Dates outside the window are
	// treated as misreads and dropped.
	MinYear int `yaml:"min_year"`
	MaxYear int `yaml:"max_year"`

	// Accepted balance window in dollars (inclusive). Amounts outside the window
	// are more likely item prices, totals, or phone fragments than card balances.
	MinBalance float64 `yaml:"min_balance"`
	MaxBalance float64 `yaml:"max_balance"`

	// Extra brand entries, checked before the built-in dictionary.
	Brands []BrandEntry `yaml:"brands"`
}
