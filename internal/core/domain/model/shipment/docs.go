// Package shipment provides the ShippingRequest aggregate: one student's request
// to move a package between two addresses, priced by an administrator.
//
// The package includes:
//   - ShippingRequest: the aggregate root holding addresses, package, dates and quotation
//   - Status: the state machine of the quotation lifecycle
//   - PackageDetails, Dimensions: the immutable description of the package
//   - Quotation: the administrator-supplied price and its timestamp
//
// Key business rules:
//   - A request is created in WaitingForQuotation and never returns to it
//   - WaitingForQuotation -> QuotationReceived -> Accepted | Rejected
//   - Accepted and Rejected are terminal
//   - A quotation is present exactly when the status is past WaitingForQuotation
//   - Preferred delivery date is not before the pickup date, and neither is
//     before the day of submission
//
// Who may trigger a transition is not decided here; see services.AccessPolicy.
package shipment
