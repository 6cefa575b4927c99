/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package butler

import "fmt"

// The butler distinguishes five failure classes, each with its own
// disposition:
//
//   - FetchError and ModelError end the run before anything is posted;
//     the run logs the failure and exits cleanly so a flaky upstream
//     does not fail the workflow.
//   - ParseError degrades the review to a summary-only post.
//   - SubmissionError triggers a single fallback to a plain comment.
//   - PlainPostError means even the plain comment could not be posted;
//     it is the only class the run surfaces as a fatal error.

// FetchError wraps a failure to retrieve the pull request diff.
type FetchError struct{ Err error }

func (e *FetchError) Error() string { return fmt.Sprintf("fetching diff: %v", e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }

// ModelError wraps a failed model invocation.
type ModelError struct{ Err error }

func (e *ModelError) Error() string { return fmt.Sprintf("generating response: %v", e.Err) }
func (e *ModelError) Unwrap() error { return e.Err }

// ParseError wraps a model response that could not be parsed into a
// review.
type ParseError struct{ Err error }

func (e *ParseError) Error() string { return fmt.Sprintf("parsing model response: %v", e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// SubmissionError wraps a rejected review submission, most commonly a
// comment anchored to a line outside the diff.
type SubmissionError struct{ Err error }

func (e *SubmissionError) Error() string { return fmt.Sprintf("submitting review: %v", e.Err) }
func (e *SubmissionError) Unwrap() error { return e.Err }

// PlainPostError wraps a failure to post a plain comment, the butler's
// last resort for getting feedback onto the pull request.
type PlainPostError struct{ Err error }

func (e *PlainPostError) Error() string { return fmt.Sprintf("posting comment: %v", e.Err) }
func (e *PlainPostError) Unwrap() error { return e.Err }
