// Package kernel provides the shared value objects of the shipping domain.
//
// The package includes:
//   - UUID: identifiers of shipping requests and users
//   - Date: a calendar date without time of day (pickup and delivery preferences)
//   - Money: a positive monetary amount held in cents (quotations)
//   - Email: a syntactically valid e-mail address (identities)
//
// All values are immutable. Zero values are invalid and are rejected by Validate.
package kernel
