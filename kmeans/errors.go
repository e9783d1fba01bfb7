package kmeans

import "errors"

var (
	// ErrEmptyData is returned when there is nothing to cluster.
	ErrEmptyData = errors.New("empty data set")
	// ErrClusterCount is returned for a cluster count below one.
	ErrClusterCount = errors.New("invalid cluster count")
	// ErrEpochs is returned for a negative epoch count.
	ErrEpochs = errors.New("invalid epoch count")
	// ErrConversion is returned when a sample, or a running sum of a cluster's members,
	// is not finite or, for integer samples, has a magnitude of 2^53 or more.
	ErrConversion = errors.New("numeric conversion failed")
)
