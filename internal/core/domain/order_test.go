package domain_test

import (
	"testing"

	"github.com/RAVEN850972/cam/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderTotalPrice(t *testing.T) {
	order := domain.Order{
		MountPrice: decimal.NewFromInt(7000),
		Lines: []domain.OrderLine{
			{SellingPrice: decimal.NewFromInt(20000)},
			{SellingPrice: decimal.NewFromInt(1500)},
		},
	}

	assert.True(t, order.TotalPrice().Equal(decimal.NewFromInt(28500)), "total %s", order.TotalPrice())
}

func TestOrderTotalPrice_NoLines(t *testing.T) {
	order := domain.Order{MountPrice: decimal.NewFromInt(4000)}

	assert.True(t, order.TotalPrice().Equal(order.MountPrice), "total %s", order.TotalPrice())
}

func TestPaymentIsPenalty(t *testing.T) {
	assert.False(t, domain.Payment{Amount: decimal.NewFromInt(3000)}.IsPenalty())
	assert.True(t, domain.Payment{Amount: decimal.NewFromInt(-500)}.IsPenalty())
	assert.True(t, domain.Payment{Amount: decimal.Zero}.IsPenalty())
}

func TestCatalogServiceProfit_NilPurchasePriceIsZeroCost(t *testing.T) {
	svc := domain.CatalogService{SellingPrice: decimal.NewFromInt(20000)}

	assert.True(t, svc.Profit(decimal.NewFromInt(18000)).Equal(decimal.NewFromInt(18000)))
}
