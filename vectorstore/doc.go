// Package vectorstore defines the database-agnostic surface for vector
// similarity search: the data model (points, collections, filters, scroll
// cursors), the Service interface implemented by concrete adapters, and the
// error kinds surfaced to callers.
//
// The package deliberately has no dependency on any vector-database SDK.
// Application code programs against vectorstore.Service and the plain types
// in this package; the qdrant package provides the production adapter and
// converts to and from wire representations internally.
//
// # Error model
//
// Adapters translate transport failures into three user-visible kinds:
//
//   - *AuthorizationError: the bound credential lacks the required
//     permission for the target collection.
//   - *NotFoundError: the target collection or point is absent.
//   - *ValidationError: the request is malformed, for example a vector
//     whose length does not match the collection dimension.
//
// All three unwrap to a package sentinel (ErrUnauthorized, ErrNotFound,
// ErrInvalidArgument) so callers can branch with errors.Is without caring
// which adapter produced the failure:
//
//	if errors.Is(err, vectorstore.ErrUnauthorized) {
//	    // credential problem, not a data problem
//	}
//
// Errors are propagated as-is: no adapter retries, aggregates, or swallows
// them.
package vectorstore
