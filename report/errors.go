// Package report prints Run's result vectors and re-verifies them
// against the evaluator, recovering incognito.py's result-reporting
// methods.
//
// Sentinel errors, following the teacher's core/builder convention: only
// package-level vars, wrapped with %w + context at the call site.
package report

import "errors"

// ErrVerificationFailed indicates Verify found a returned vector that is
// not actually k-anonymous.
var ErrVerificationFailed = errors.New("report: verification failed")
