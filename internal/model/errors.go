package model

import "fmt"

// ValidationError signals a missing or malformed field at the API boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError signals that a referenced dataset or KPI does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// InvalidKPITypeError signals an unrecognized aggregation type reaching the
// evaluator. Boundary validation should make this unreachable in practice.
type InvalidKPITypeError struct {
	Type AggType
}

func (e *InvalidKPITypeError) Error() string {
	return fmt.Sprintf("invalid KPI type: %s", e.Type)
}

// EmptyDatasetError signals that a dataset has no rows to evaluate against.
type EmptyDatasetError struct {
	DatasetID string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("no data available for dataset %s", e.DatasetID)
}

// ExternalServiceError wraps a failure from an outside service, currently
// only the AI recommendation call.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }
