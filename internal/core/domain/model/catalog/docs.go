// Package catalog models the bakery's products: the unit prices that orders
// snapshot and the stock that order placement reserves.
package catalog
