// Package services contains domain services that don't naturally belong to a single aggregate.
//
// AccessPolicy decides who may act on shipping requests. Administrators are an
// allow-list of e-mail addresses supplied at process start; ownership is a
// comparison of the acting identity with the request's owner. Every
// authorization decision of the lifecycle goes through it.
package services
