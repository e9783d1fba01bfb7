// Package kmeans partitions a set of scalar values into a fixed number of clusters.
//
// The algorithm is the plain one-dimensional Lloyd loop: centers are seeded
// uniformly over the range of the data and then, for a fixed number of epochs,
// every value is assigned to its nearest center and every non-empty cluster
// moves its center to the mean of its members. There is no early stopping.
//
//	clusters, err := kmeans.Solve([]int{1, 2, 3, 100, 101, 102}, 2, 10)
//
// Centers are always float64, whatever the sample type.
package kmeans
