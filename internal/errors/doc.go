// Package errors provides the structured error type shared by the arena
// packages.
//
// Errors carry a Code, a user-facing Message, an optional Cause and
// free-form metadata:
//
//	err := errors.NotFoundf("pokemon %s not found", ref).
//	    WithMeta("generation", gen)
//
// Wrapping keeps the code of the innermost structured error:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to persist progress")
//	}
//
// Layer guidelines:
//   - repositories return NotFound for missing keys and DataLoss for blobs
//     that can no longer be decoded
//   - services and orchestrators validate input (InvalidArgument) and
//     preconditions such as locked game modes (FailedPrecondition)
//   - the CLI maps errors to gRPC status codes with ToGRPCError
package errors
