package metrics

import "github.com/pkg/errors"

var (
	// ErrDuplicateMetricName is returned when a metric is registered under a
	// name that already exists in the registry.
	ErrDuplicateMetricName = errors.New("duplicate metric name")

	// ErrLabelArity is returned (or used as panic value) when the number of
	// label values does not match the number of declared label names.
	ErrLabelArity = errors.New("label arity mismatch")

	// ErrInvalidLabelValue is returned for label values that are not valid
	// UTF-8.
	ErrInvalidLabelValue = errors.New("invalid label value")

	// ErrInvalidName is returned for metric names outside [a-zA-Z_:][a-zA-Z0-9_:]*.
	ErrInvalidName = errors.New("invalid metric name")

	// ErrInvalidLabelName is returned for malformed, reserved or repeated label names.
	ErrInvalidLabelName = errors.New("invalid label name")

	// ErrInvalidBuckets is returned when histogram buckets are not strictly ascending.
	ErrInvalidBuckets = errors.New("invalid histogram buckets")
)
