package interfaces

import "time"

// IOperationMetrics records the outcome of processor calls.
type IOperationMetrics interface {
	ObserveOperation(operation string, outcome string, elapsed time.Duration)
}
