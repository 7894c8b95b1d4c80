// Package settings models the store-wide configuration singleton (key "global"),
// currently the UPI payment details and whether UPI checkout is enabled.
package settings
