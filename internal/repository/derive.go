package repository

import "github.com/Dmungal1308/QuickSales-sub000/internal/domain/entity"

// The derivation rules below are the client-side projections of the single
// remote product collection. They are pure so both the REST adapter and the
// tests can exercise them directly.

// Owned: listed by me and not yet sold.
func Owned(products []entity.Product, me int64) []entity.Product {
	return filter(products, func(p entity.Product) bool {
		return p.SellerID == me && !p.Sold()
	})
}

// Available: listed by somebody else and still for sale.
func Available(products []entity.Product, me int64) []entity.Product {
	return filter(products, func(p entity.Product) bool {
		return p.SellerID != me && p.Status == entity.StatusForSale
	})
}

// Purchased: bought by me.
func Purchased(products []entity.Product, me int64) []entity.Product {
	return filter(products, func(p entity.Product) bool {
		return p.BuyerID != nil && *p.BuyerID == me
	})
}

// Sold: listed by me and already bought by someone.
func Sold(products []entity.Product, me int64) []entity.Product {
	return filter(products, func(p entity.Product) bool {
		return p.SellerID == me && p.Sold()
	})
}

func filter(products []entity.Product, keep func(entity.Product) bool) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
