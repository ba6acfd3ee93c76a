// Package services provides domain services that orchestrate business operations
// across the storefront aggregates. It implements the workflows that don't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - LifecycleEngine: decides whether an actor may move an order to a target
//     status and applies the move, issuing the tracking code on invoice
//   - ReturnPolicy: the checks a return request must pass against its order
//   - RatingAggregator: ownership check for ratings and recomputation of a
//     product's rating summary
//
// Services here are pure: they work on loaded aggregates and never touch
// storage. Locking and persistence are the command handlers' job.
package services
