// Package scenario evaluates YAML-described batches of vector pairs through
// the vector.Vector contract and logs every result with zap. Contract
// violations of individual operations are collected per pair instead of
// aborting the batch.
package scenario
