package models

// Service categories known to the price table
const (
	CategoryPlumbing   = "plumbing"
	CategoryElectrical = "electrical"
	CategoryCleaning   = "cleaning"
	CategoryPainting   = "painting"
	CategoryCarpentry  = "carpentry"
	CategoryAC         = "ac"
)

var categoryPrices = map[string]int64{
	CategoryPlumbing:   499,
	CategoryElectrical: 599,
	CategoryCleaning:   399,
	CategoryPainting:   899,
	CategoryCarpentry:  699,
	CategoryAC:         499,
}

// PriceFor returns the base visit price for a category
func PriceFor(category string) (int64, bool) {
	price, ok := categoryPrices[category]
	return price, ok
}

// Categories lists the priced categories in storefront order
func Categories() []string {
	return []string{CategoryPlumbing, CategoryElectrical, CategoryCleaning, CategoryPainting, CategoryCarpentry, CategoryAC}
}
