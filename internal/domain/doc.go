// Package domain contains the core business entities of the shop:
// products, orders, cart associations, and users. Entities carry their
// own validation and are independent of any storage or delivery mechanism.
package domain
