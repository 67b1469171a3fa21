package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level finrep.yaml configuration. Exchange
// rates and the budget table are configuration injected at computation
// time, never process-wide constants.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Rates    RateTable      `yaml:"rates"`
	Budget   BudgetTable    `yaml:"budget"`
	Git      GitConfig      `yaml:"git"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name           string `yaml:"name"`
	BOICertificate string `yaml:"boi_certificate,omitempty"`
}

// RateTable holds the exchange rates used for aggregation and display.
// Amount fields are plain floats in YAML and converted to decimals at the
// accessor boundary.
type RateTable struct {
	BaseCurrency string        `yaml:"base_currency"` // e.g. "PHP"
	BudgetRate   float64       `yaml:"budget_rate"`   // base units per budgeting-currency unit
	Display      []DisplayRate `yaml:"display"`
}

// DisplayRate maps a display currency to its multiplier from base.
type DisplayRate struct {
	Code       string  `yaml:"code"`
	Multiplier float64 `yaml:"multiplier"`
}

// BudgetRateDec returns the budget conversion rate as a decimal.
func (r RateTable) BudgetRateDec() decimal.Decimal {
	return decimal.NewFromFloat(r.BudgetRate)
}

// Multiplier returns the display multiplier for a currency code. The base
// currency always maps to 1, whether or not it is listed.
func (r RateTable) Multiplier(code string) (decimal.Decimal, bool) {
	if code == r.BaseCurrency {
		return decimal.NewFromInt(1), true
	}
	for _, d := range r.Display {
		if d.Code == code {
			return decimal.NewFromFloat(d.Multiplier), true
		}
	}
	return decimal.Decimal{}, false
}

// Codes returns the base currency followed by all display currency codes.
func (r RateTable) Codes() []string {
	codes := []string{r.BaseCurrency}
	for _, d := range r.Display {
		if d.Code != r.BaseCurrency {
			codes = append(codes, d.Code)
		}
	}
	return codes
}

// MonthlyBudget is one row of the twelve-month budget table, in the
// budgeting currency.
type MonthlyBudget struct {
	Revenue float64 `yaml:"revenue"`
	COGS    float64 `yaml:"cogs"`
	OpEx    float64 `yaml:"opex"`
}

// RevenueDec returns the budgeted revenue as a decimal.
func (b MonthlyBudget) RevenueDec() decimal.Decimal { return decimal.NewFromFloat(b.Revenue) }

// COGSDec returns the budgeted COGS as a decimal.
func (b MonthlyBudget) COGSDec() decimal.Decimal { return decimal.NewFromFloat(b.COGS) }

// OpExDec returns the budgeted operating expense as a decimal.
func (b MonthlyBudget) OpExDec() decimal.Decimal { return decimal.NewFromFloat(b.OpEx) }

// BudgetTable is the fixed twelve-row budget, January first. It is only
// ever read for variance comparison, never mutated at runtime.
type BudgetTable []MonthlyBudget

// Validate checks that the table has exactly twelve rows.
func (t BudgetTable) Validate() error {
	if len(t) != 12 {
		return fmt.Errorf("budget table has %d rows, want 12", len(t))
	}
	return nil
}

// ForMonth returns the budget row for a month. A short table yields a
// zero row rather than a panic.
func (t BudgetTable) ForMonth(m time.Month) MonthlyBudget {
	i := int(m) - 1
	if i < 0 || i >= len(t) {
		return MonthlyBudget{}
	}
	return t[i]
}

// Load reads a finrep.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Budget.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// GitConfig controls git integration for the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Default returns a Config with sensible defaults for a new data directory.
// The budget rows repeat a flat monthly plan; real deployments edit them.
func Default(businessName string) *Config {
	budget := make(BudgetTable, 12)
	for i := range budget {
		budget[i] = MonthlyBudget{Revenue: 50000, COGS: 27500, OpEx: 12500}
	}

	return &Config{
		Business: BusinessConfig{
			Name: businessName,
		},
		Rates: RateTable{
			BaseCurrency: "PHP",
			BudgetRate:   58.50,
			Display: []DisplayRate{
				{Code: "USD", Multiplier: 0.0171},
				{Code: "EUR", Multiplier: 0.0157},
			},
		},
		Budget: budget,
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Finrep",
			AuthorEmail: "finrep@karnot.io",
		},
	}
}
