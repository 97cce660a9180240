package client

import "context"

// CatalogRefs are the resolved references an order item needs: which
// product, from which store, at what unit price.
type CatalogRefs struct {
	ProductID string
	StoreID   string
	UnitPrice float64
}

// CatalogResolver turns user-entered product details into catalog
// references. The order flow only ever consumes resolved references, so a
// real catalog-lookup service can slot in without touching order logic.
type CatalogResolver interface {
	Resolve(ctx context.Context, productName string) (CatalogRefs, error)
}

// StaticCatalog resolves every product to one configured catalog entry.
// It stands in for a real lookup in deployments wired against known demo
// data.
type StaticCatalog struct {
	ProductID string
	StoreID   string
	UnitPrice float64
}

func (c *StaticCatalog) Resolve(ctx context.Context, productName string) (CatalogRefs, error) {
	return CatalogRefs{
		ProductID: c.ProductID,
		StoreID:   c.StoreID,
		UnitPrice: c.UnitPrice,
	}, nil
}
