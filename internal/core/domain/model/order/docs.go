// Package order holds the Order aggregate of the bakery storefront.
//
// An order is placed once with snapshotted line items, a shipping address,
// computed totals and a payment method, then moved between fulfilment and
// payment states by administrators:
//   - Status: Pending, Confirmed, Preparing, Out for Delivery, Delivered, Cancelled
//   - PaymentStatus: Pending, Pending Verification, Paid, Failed, Refunded
//
// Transitions are deliberately unrestricted. Marking a payment Paid records
// who verified it and confirms a Pending order; any other payment status
// clears that record. The aggregate records order.placed and order.updated
// events for the transactional outbox.
package order
