// Package catalog contains the sellable side of the store: products,
// their suppliers and categories.
//
// Catalog entries are reference data for order processing. The only
// mutation order entry performs here is the supplier upsert-by-name that
// happens while adding a product.
package catalog
