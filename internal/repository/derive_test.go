package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dmungal1308/QuickSales-sub000/internal/domain/entity"
)

const me int64 = 10

func ptr(id int64) *int64 { return &id }

func sampleProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Bicicleta", SellerID: me, Status: entity.StatusForSale},
		{ID: 2, Name: "Patinete", SellerID: me, Status: entity.StatusSold, BuyerID: ptr(20)},
		{ID: 3, Name: "Cámara", SellerID: 20, Status: entity.StatusForSale},
		{ID: 4, Name: "Portátil", SellerID: 20, Status: entity.StatusSold, BuyerID: ptr(me)},
		{ID: 5, Name: "Monitor", SellerID: 30, Status: entity.StatusSold, BuyerID: ptr(40)},
	}
}

func ids(products []entity.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestOwned(t *testing.T) {
	// Owned iff seller is me and there is no buyer.
	assert.Equal(t, []int64{1}, ids(Owned(sampleProducts(), me)))
}

func TestAvailable(t *testing.T) {
	// Available iff seller is somebody else and the product is for sale.
	assert.Equal(t, []int64{3}, ids(Available(sampleProducts(), me)))
}

func TestPurchased(t *testing.T) {
	assert.Equal(t, []int64{4}, ids(Purchased(sampleProducts(), me)))
}

func TestSold(t *testing.T) {
	assert.Equal(t, []int64{2}, ids(Sold(sampleProducts(), me)))
}

func TestDerivationsArePartitionsOfTheCollection(t *testing.T) {
	products := sampleProducts()
	for _, p := range products {
		inOwned := contains(ids(Owned(products, me)), p.ID)
		inSold := contains(ids(Sold(products, me)), p.ID)
		assert.False(t, inOwned && inSold, "product %d cannot be both owned and sold", p.ID)
	}
}

func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
