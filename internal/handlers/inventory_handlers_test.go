package handlers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SandMart23/Aplikasi-Bawang/internal/services"
)

func TestInvalidReceiptMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"QuantityOutOfRange", fmt.Errorf("%w: got 0, allowed 1..10000", services.ErrQuantityOutOfRange), "Jumlah produk harus antara 1-10000"},
		{"NegativePrice", fmt.Errorf("%w: got -1", services.ErrNegativePrice), "Harga tidak boleh negatif"},
		{"NegativeShelfLife", fmt.Errorf("%w: got -30", services.ErrNegativeShelfLife), "Masa simpan tidak boleh negatif"},
		{"MalformedProductionDate", fmt.Errorf("%w: bad layout", services.ErrInvalidProductionDate), "Tanggal produksi tidak valid"},
		{"BareSentinelFallsBackToGeneric", services.ErrInvalidReceipt, "Data penerimaan tidak valid"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, invalidReceiptMessage(tc.err))
		})
	}
}
