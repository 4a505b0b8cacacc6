// Package errors is the error type shared by every layer of the armor service.
//
// Errors carry a Code, a user-facing message, an optional cause and optional metadata:
//
//	err := errors.NotFoundf("draft %s not found", id)
//	err := errors.FailedPrecondition("allocation has errors").WithMeta("errors", messages)
//
// Repositories return NotFound / AlreadyExists, orchestrators validate input with a
// ValidationBuilder and wrap lower-layer errors with Wrap, which keeps the original code.
// Handlers convert with ToGRPCError; metadata travels to the client as a structpb.Struct
// status detail and comes back through FromGRPCError.
package errors
