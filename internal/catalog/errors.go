package catalog

import "fmt"

// QueryError reports a failed read against the row store. The underlying
// store message is carried verbatim; callers render it inline and do not
// retry.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// SubmissionError reports a failed lead write. The caller keeps the
// submitted input and is responsible for re-submission.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("lead submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
