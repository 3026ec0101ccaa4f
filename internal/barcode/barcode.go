package barcode

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Variant is the flavor classification of a bawang goreng product.
type Variant string

const (
	VariantOriginal Variant = "original"
	VariantPedas    Variant = "pedas"
	VariantManis    Variant = "manis"
	VariantAsin     Variant = "asin"
)

// Weight is the package weight in grams.
type Weight int

const (
	Weight100g Weight = 100
	Weight250g Weight = 250
	Weight500g Weight = 500
	Weight1kg  Weight = 1000
)

// DateLayout is the wire format for production and expiry dates.
const DateLayout = "2006-01-02"

// barcodeSuffix is shared by every product line. Two lines could collide if
// their prefix+weight code ever matched; the prefix and weight tables being
// exhaustive and distinct is what currently prevents that.
const barcodeSuffix = "24706"

var variantPrefixes = map[Variant]string{
	VariantOriginal: "10",
	VariantPedas:    "11",
	VariantManis:    "12",
	VariantAsin:     "13",
}

var variantNames = map[Variant]string{
	VariantOriginal: "Bawang Goreng Original",
	VariantPedas:    "Bawang Goreng Pedas",
	VariantManis:    "Bawang Goreng Manis",
	VariantAsin:     "Bawang Goreng Asin",
}

var weightCodes = map[Weight]string{
	Weight100g: "0100",
	Weight250g: "0250",
	Weight500g: "0500",
	Weight1kg:  "1000",
}

// SuggestedPrices maps package weight to the default price (IDR) offered by
// the intake form when the operator has not typed one.
var SuggestedPrices = map[Weight]float64{
	Weight100g: 15000,
	Weight250g: 25000,
	Weight500g: 45000,
	Weight1kg:  85000,
}

// Variants lists the declared variants in display order.
func Variants() []Variant {
	return []Variant{VariantOriginal, VariantPedas, VariantManis, VariantAsin}
}

// Weights lists the declared package weights in ascending order.
func Weights() []Weight {
	return []Weight{Weight100g, Weight250g, Weight500g, Weight1kg}
}

// DisplayName returns the product name for a variant, e.g. "Bawang Goreng
// Pedas". Unknown variants fall back to the raw value so the caller always
// gets something printable.
func DisplayName(v Variant) string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return string(v)
}

// Generate builds the canonical EAN-13 code for a variant and weight:
// 2-digit variant prefix, 4-digit weight code, a padding zero, the fixed
// 5-digit suffix and the computed check digit. The same pair always yields
// the same 13 digits. Undeclared variants degrade to prefix "10" and
// undeclared weights to "0000" rather than failing.
func Generate(v Variant, w Weight) string {
	prefix, ok := variantPrefixes[v]
	if !ok {
		prefix = "10"
	}
	weightCode, ok := weightCodes[w]
	if !ok {
		weightCode = "0000"
	}

	// The padding zero brings the base to the 12 digits EAN-13 requires.
	base := prefix + weightCode + "0" + barcodeSuffix
	return base + strconv.Itoa(CheckDigit(base))
}

// CheckDigit computes the EAN-13 check digit for a base of exactly 12 ASCII
// digits: digits at even 0-indexed positions weigh 1, odd positions weigh 3,
// and the digit is (10 - sum mod 10) mod 10. A shorter base panics rather
// than producing a wrong digit.
func CheckDigit(base string) int {
	sum := 0
	for i := 0; i < 12; i++ {
		digit := int(base[i] - '0')
		if i%2 == 0 {
			sum += digit
		} else {
			sum += digit * 3
		}
	}
	return (10 - sum%10) % 10
}

// ExpiryDate adds shelfLifeDays to a production date given in DateLayout
// form and returns the expiry date in the same form. AddDate keeps the
// arithmetic calendar-correct across month and year boundaries.
func ExpiryDate(productionDate string, shelfLifeDays int) (string, error) {
	t, err := time.Parse(DateLayout, productionDate)
	if err != nil {
		return "", fmt.Errorf("invalid production date %q: %w", productionDate, err)
	}
	return t.AddDate(0, 0, shelfLifeDays).Format(DateLayout), nil
}

// FormatRupiah renders an amount the way the storefront shows prices:
// "Rp45.000" with dot thousand separators and no fraction digits.
func FormatRupiah(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(int64(amount+0.5), 10)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if negative {
		return "-Rp" + b.String()
	}
	return "Rp" + b.String()
}

// FormatDate renders a time as DD/MM/YYYY for table display.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatWeight renders grams for product names: "250g" below a kilogram,
// "1kg" at or above.
func FormatWeight(w Weight) string {
	if w >= 1000 {
		return strconv.Itoa(int(w)/1000) + "kg"
	}
	return strconv.Itoa(int(w)) + "g"
}
