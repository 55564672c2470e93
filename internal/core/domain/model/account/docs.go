// Package account contains the Account aggregate: the binding of a user
// identity to an actor role, a restaurant scope for restaurant admins, and
// the Telegram chat used for notifications.
//
// The access guard resolves bearer tokens to accounts, and the notification
// dispatcher resolves notification recipients to accounts to find their chat.
// Token issuance itself is an external concern; the token stored here is an
// opaque identity key.
package account
