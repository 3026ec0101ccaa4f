package barcode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ean13Valid checks the weighted-sum relation over all 13 digits:
// alternating 1/3 weights over the first 12 plus the check digit must be a
// multiple of 10.
func ean13Valid(code string) bool {
	if len(code) != 13 {
		return false
	}
	sum := 0
	for i := 0; i < 12; i++ {
		digit := int(code[i] - '0')
		if i%2 == 0 {
			sum += digit
		} else {
			sum += digit * 3
		}
	}
	sum += int(code[12] - '0')
	return sum%10 == 0
}

func TestGenerate(t *testing.T) {
	t.Run("KnownCombinations", func(t *testing.T) {
		cases := []struct {
			variant Variant
			weight  Weight
			want    string
		}{
			{VariantOriginal, Weight500g, "1005000247065"},
			{VariantPedas, Weight250g, "1102500247066"},
			{VariantManis, Weight100g, "1201000247061"},
			{VariantAsin, Weight1kg, "1310000247060"},
		}
		for _, tc := range cases {
			require.Equal(t, tc.want, Generate(tc.variant, tc.weight))
		}
	})

	t.Run("TwelveDigitBaseBeforeCheckDigit", func(t *testing.T) {
		code := Generate(VariantOriginal, Weight500g)
		require.Len(t, code, 13)
		require.Equal(t, "100500024706", code[:12])
		require.Equal(t, byte('0'+CheckDigit(code[:12])), code[12])
	})

	t.Run("DeterministicAndChecksummedOverFullGrid", func(t *testing.T) {
		for _, v := range Variants() {
			for _, w := range Weights() {
				first := Generate(v, w)
				require.Len(t, first, 13)
				require.True(t, ean13Valid(first), "checksum failed for %s/%d: %s", v, w, first)
				for i := 0; i < 5; i++ {
					require.Equal(t, first, Generate(v, w))
				}
			}
		}
	})

	t.Run("DistinctAcrossGrid", func(t *testing.T) {
		seen := map[string]bool{}
		for _, v := range Variants() {
			for _, w := range Weights() {
				code := Generate(v, w)
				require.False(t, seen[code], "collision on %s", code)
				seen[code] = true
			}
		}
	})

	t.Run("UnknownInputsFallBackInsteadOfFailing", func(t *testing.T) {
		// prefix "10" + weight code "0000" + suffix + its check digit
		require.Equal(t, "1000000247060", Generate(Variant("balado"), Weight(375)))
		require.True(t, ean13Valid(Generate(Variant("balado"), Weight(375))))
	})
}

func TestCheckDigit(t *testing.T) {
	require.Equal(t, 5, CheckDigit("100500024706"))
	require.Equal(t, 0, CheckDigit("100000024706"))
}

func TestExpiryDate(t *testing.T) {
	t.Run("MonthRollover", func(t *testing.T) {
		got, err := ExpiryDate("2024-01-31", 1)
		require.NoError(t, err)
		require.Equal(t, "2024-02-01", got)
	})

	t.Run("YearRollover", func(t *testing.T) {
		got, err := ExpiryDate("2024-12-31", 1)
		require.NoError(t, err)
		require.Equal(t, "2025-01-01", got)
	})

	t.Run("LeapDay", func(t *testing.T) {
		got, err := ExpiryDate("2024-02-28", 1)
		require.NoError(t, err)
		require.Equal(t, "2024-02-29", got)
	})

	t.Run("ZeroDays", func(t *testing.T) {
		got, err := ExpiryDate("2024-06-15", 0)
		require.NoError(t, err)
		require.Equal(t, "2024-06-15", got)
	})

	t.Run("MalformedDate", func(t *testing.T) {
		_, err := ExpiryDate("31-01-2024", 7)
		require.Error(t, err)
	})
}

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp15.000", FormatRupiah(15000))
	assert.Equal(t, "Rp85.000", FormatRupiah(85000))
	assert.Equal(t, "Rp1.234.567", FormatRupiah(1234567))
	assert.Equal(t, "Rp500", FormatRupiah(500))
	assert.Equal(t, "Rp0", FormatRupiah(0))
	assert.Equal(t, "-Rp2.500", FormatRupiah(-2500))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.January, 31, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "31/01/2024", FormatDate(d))
}

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "100g", FormatWeight(Weight100g))
	assert.Equal(t, "250g", FormatWeight(Weight250g))
	assert.Equal(t, "500g", FormatWeight(Weight500g))
	assert.Equal(t, "1kg", FormatWeight(Weight1kg))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Bawang Goreng Original", DisplayName(VariantOriginal))
	assert.Equal(t, "Bawang Goreng Asin", DisplayName(VariantAsin))
	assert.Equal(t, "balado", DisplayName(Variant("balado")))
}
