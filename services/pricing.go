package services

import (
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Rorogogogo/Mr.R-Sushi-sub000/entity"
)

// SurchargeTable is an explicit, versioned mapping from add-on name to a
// fixed surcharge. Pricing is keyed by this table only, never by display
// text scattered across the storefront.
type SurchargeTable struct {
	Version int
	entries map[string]decimal.Decimal
}

func NewSurchargeTable(version int, entries map[string]decimal.Decimal) *SurchargeTable {
	return &SurchargeTable{Version: version, entries: entries}
}

func DefaultSurchargeTable() *SurchargeTable {
	return NewSurchargeTable(1, map[string]decimal.Decimal{
		"加培根": decimal.NewFromInt(7),
		"加火腿": decimal.NewFromInt(5),
		"加鸡蛋": decimal.NewFromInt(3),
		"加芝士": decimal.NewFromInt(4),
	})
}

// Lookup resolves one add-on name against the table.
func (t *SurchargeTable) Lookup(name string) (decimal.Decimal, bool) {
	amt, ok := t.entries[name]
	return amt, ok
}

// AllowsAddOns reports whether a catalog category accepts add-ons.
// Sushi ships as-is; handrolls and pancakes take extras.
func (t *SurchargeTable) AllowsAddOns(category string) bool {
	switch category {
	case entity.CategoryHandroll, entity.CategoryPancake:
		return true
	}
	return false
}

var currencyGlyphs = []string{"元", "¥", "￥"}

// ParsePrice converts the catalog's textual price ("15元") into an exact
// decimal. This happens once at the catalog boundary; nothing downstream
// ever derives money from a display string.
func ParsePrice(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	for _, g := range currencyGlyphs {
		s = strings.TrimSuffix(s, g)
	}
	return decimal.NewFromString(strings.TrimSpace(s))
}

// PriceFromText is ParsePrice with the ingestion fallback: a malformed
// price is worth zero and gets logged, it never aborts processing.
func PriceFromText(text string) decimal.Decimal {
	d, err := ParsePrice(text)
	if err != nil {
		log.Printf("pricing: unparseable price %q, defaulting to 0: %v", text, err)
		return decimal.Zero
	}
	return d
}

// FormatPrice re-attaches the currency glyph for display.
func FormatPrice(d decimal.Decimal) string {
	return d.String() + "元"
}

// Pricing computes unit prices and totals from catalog data and the
// surcharge table. It is the only place money math happens.
type Pricing struct {
	Table *SurchargeTable
}

func NewPricing(table *SurchargeTable) *Pricing { return &Pricing{Table: table} }

// PriceLine returns the unit price (base plus surcharges), the line total
// and the resolved selections so checkout can snapshot them. Unknown
// add-on names price at zero; they are decoration on the ticket, not a
// reason to fail an order, but they do get logged.
func (p *Pricing) PriceLine(item *entity.MenuItem, qty int, addOns []string) (decimal.Decimal, decimal.Decimal, entity.AddOnList) {
	unit := item.Price
	sels := make(entity.AddOnList, 0, len(addOns))
	for _, name := range addOns {
		amt, ok := p.Table.Lookup(name)
		if !ok {
			log.Printf("pricing: unknown add-on %q (table v%d), charging 0", name, p.Table.Version)
			amt = decimal.Zero
		}
		unit = unit.Add(amt)
		sels = append(sels, entity.AddOnSelection{Name: name, Surcharge: amt})
	}
	total := unit.Mul(decimal.NewFromInt(int64(qty)))
	return unit, total, sels
}

// LineBreakdown is one priced cart line.
type LineBreakdown struct {
	MenuItemID uint             `json:"menuItemId"`
	Name       string           `json:"name"`
	Qty        int              `json:"qty"`
	UnitPrice  decimal.Decimal  `json:"unitPrice"`
	Total      decimal.Decimal  `json:"total"`
	AddOns     entity.AddOnList `json:"addOns"`
}

// PriceCart prices every line through the catalog lookup and sums the
// grand total. A lookup failure is the caller's error to classify.
func (p *Pricing) PriceCart(lines []entity.CartItem, lookup func(uint) (*entity.MenuItem, error)) ([]LineBreakdown, decimal.Decimal, error) {
	out := make([]LineBreakdown, 0, len(lines))
	grand := decimal.Zero
	for _, ln := range lines {
		m, err := lookup(ln.MenuItemID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		unit, total, sels := p.PriceLine(m, ln.Qty, ln.AddOns)
		out = append(out, LineBreakdown{
			MenuItemID: m.ID, Name: m.Name, Qty: ln.Qty,
			UnitPrice: unit, Total: total, AddOns: sels,
		})
		grand = grand.Add(total)
	}
	return out, grand, nil
}
