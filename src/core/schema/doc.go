// Package schema defines the validated input and output shapes of the
// contacts service.
//
// Inputs (ContactSchema, ContactUpdateSchema, UserSchema) are checked with
// Validate before they reach a service or repository; repositories trust
// them as-is. Outputs (ContactResponse, UserResponse) are projections of
// domain entities for the HTTP layer.
package schema
