package models

// CatalogEntry describes one purchasable service: its price in paise and the
// membership category it is reported under in the ledger.
type CatalogEntry struct {
	Price    int64
	Category string
}

// DefaultCategory is used for any service missing a category mapping.
const DefaultCategory = "Membership"

// Catalog is the static service table. Built at startup, read-only afterwards.
type Catalog struct {
	entries map[string]CatalogEntry
}

// NewCatalog returns the membership service catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: map[string]CatalogEntry{
		"Annual Fee (All)":               {Price: 5000 * 100, Category: "Membership"},
		"HR Services Company Membership": {Price: 5000 * 100, Category: "HR Services"},
		"HR Consultants Membership":      {Price: 3000 * 100, Category: "HR Consultant"},
		"Corporates Membership":          {Price: 15000 * 100, Category: "Corporate"},
		"Demo Service":                   {Price: 1 * 100, Category: "Membership"},
	}}
}

// Price returns the price in paise for a service, and whether it exists.
func (c *Catalog) Price(service string) (int64, bool) {
	entry, ok := c.entries[service]
	if !ok {
		return 0, false
	}
	return entry.Price, true
}

// Category returns the ledger category for a service, falling back to
// DefaultCategory for services without a mapping.
func (c *Catalog) Category(service string) string {
	if entry, ok := c.entries[service]; ok && entry.Category != "" {
		return entry.Category
	}
	return DefaultCategory
}
