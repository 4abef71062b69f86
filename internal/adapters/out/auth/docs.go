// Package auth implements the identity provider collaborators: HS256 session
// tokens signed with golang-jwt and bcrypt password hashing.
package auth
