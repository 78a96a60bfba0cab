package entities

import (
	"encoding/json"
	"time"
)

// OperationType names a payment-method lifecycle call made against the processor.
type OperationType string

const (
	OperationCreate OperationType = "create"
	OperationFind   OperationType = "find"
	OperationUpdate OperationType = "update"
	OperationGrant  OperationType = "grant"
	OperationRevoke OperationType = "revoke"
	OperationDelete OperationType = "delete"
)

// PaymentMethodOperation is the audit record of one processor call.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (token-index): token
//
// ResponseRaw keeps the processor response as returned for traceability; Response is
// the same body decoded, for querying/debugging.
type PaymentMethodOperation struct {
	ID                string            `json:"id"`
	Operation         OperationType     `json:"operation"`
	Token             string            `json:"token"`
	PaymentMethodKind PaymentMethodKind `json:"payment_method_kind,omitempty"`
	Success           bool              `json:"success"`
	Date              time.Time         `json:"date"`

	ResponseRaw json.RawMessage        `json:"response_raw,omitempty"`
	Response    map[string]interface{} `json:"response,omitempty"`
}
