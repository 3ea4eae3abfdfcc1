// Package completion provides the text-completion client used by the task
// loop. It presents a deliberately small surface: a request carrying a
// system instruction and an ordered transcript, and a response carrying the
// reply text.
//
// Provider transport is delegated to adapters. The default adapter wraps
// gollm, which handles provider-specific HTTP details and API key lookup.
// Retries for transient failures are applied by the Client itself via
// RetryPolicy, so adapters should not retry internally.
package completion
