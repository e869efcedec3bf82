// Package metric exposes Prometheus metrics for CKit soak runs.
//
// All collectors live on a private registry so that two runners in one
// process (as happens in tests) never collide on registration.
package metric
