// Package services provides domain services that span more than one aggregate.
//
//   - OrderPlacer: checks a checkout request against catalog products, snapshots
//     prices into line items and works out the stock reservations for the order.
package services
