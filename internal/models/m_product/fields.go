package m_product

// Key constants for the product JSON document exchanged with the remote collection.
const (
	ResourcePath = "/api/products"

	KeyID          = "id"
	KeyMake        = "make"
	KeyModel       = "model"
	KeyDescription = "description"
	KeyQuantity    = "quantity"
	KeyUnitPrice   = "unitPrice"
	KeyTotalPrice  = "totalPrice"

	// KeyQuotedUnitPrice is the unit price key of the quote-desk backend and
	// its web form. It is read as an alias of KeyUnitPrice.
	KeyQuotedUnitPrice = "quotedUnitPrice"
)

// UnitPriceKeys lists every key a unit price may travel under.
var UnitPriceKeys = []string{KeyUnitPrice, KeyQuotedUnitPrice}

// IsUnitPriceKey reports whether key names a unit price.
func IsUnitPriceKey(key string) bool {
	for _, k := range UnitPriceKeys {
		if k == key {
			return true
		}
	}
	return false
}
