package stripe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ledgeline-io/stripe-client/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrUnsupportedResourceType    = errors.New("unsupported resource type")
	ErrUnsupportedOperationType   = errors.New("unsupported operation type")
	ErrInvalidDataTypeCharge      = errors.New("invalid data type for charge operation")
	ErrInvalidDataTypeCustomer    = errors.New("invalid data type for customer operation")
	ErrInvalidDataTypeInvoiceItem = errors.New("invalid data type for invoice item operation")
	ErrInvalidDataTypeRefund      = errors.New("invalid data type for refund operation")
	ErrOperationNotSupportedByRes = errors.New("operation not supported by resource")
)

// UpdateDataWrapper pairs update params with the target resource id.
type UpdateDataWrapper[T any] struct {
	ID     string
	Params *T
}

// BatchOperation represents a single operation in a batch.
type BatchOperation struct {
	ID       string
	Type     string // "create", "update", "delete", "retrieve", "capture"
	Resource string // "charge", "customer", "invoice_item", "refund"
	Data     interface{}
	Callback func(result *BatchResult)
}

// BatchResult represents the result of a batch operation.
type BatchResult struct {
	ID       string
	Success  bool
	Data     interface{}
	Error    error
	Duration time.Duration
}

// BatchExecutor runs independent API operations concurrently. Each
// operation gets its own timeout; failures are reported per result, never
// by aborting the batch.
type BatchExecutor struct {
	client      Client
	concurrency int
	timeout     time.Duration
}

// NewBatchExecutor creates a new batch executor.
func NewBatchExecutor(client Client, concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = constants.DefaultBatchConcurrency
	}

	return &BatchExecutor{
		client:      client,
		concurrency: concurrency,
		timeout:     constants.DefaultBatchTimeout,
	}
}

// SetTimeout sets the per-operation timeout.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs a batch of operations. Results are positionally aligned
// with the input. The returned error reflects only batch-level failure;
// per-operation errors live in their results.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) ([]BatchResult, error) {
	results := make([]BatchResult, len(operations))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(b.concurrency)

	for index, operation := range operations {
		index, operation := index, operation

		group.Go(func() error {
			opCtx, cancel := context.WithTimeout(groupCtx, b.timeout)
			defer cancel()

			start := time.Now()
			result := b.executeOperation(opCtx, operation)
			result.Duration = time.Since(start)
			results[index] = *result

			if operation.Callback != nil {
				operation.Callback(result)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return results, fmt.Errorf("executing batch: %w", err)
	}

	return results, nil
}

// handleCrudOperation dispatches on the operation type and fills in a
// result.
func handleCrudOperation(
	operation BatchOperation,
	createFunc func() (interface{}, error),
	updateFunc func() (interface{}, error),
	deleteFunc func() (interface{}, error),
	retrieveFunc func() (interface{}, error),
) *BatchResult {
	result := &BatchResult{ID: operation.ID}

	switch operation.Type {
	case "create":
		data, err := createFunc()
		result.Success = err == nil
		result.Data = data
		result.Error = err
	case "update":
		data, err := updateFunc()
		result.Success = err == nil
		result.Data = data
		result.Error = err
	case "delete":
		data, err := deleteFunc()
		result.Success = err == nil
		result.Data = data
		result.Error = err
	case "retrieve":
		data, err := retrieveFunc()
		result.Success = err == nil
		result.Data = data
		result.Error = err
	default:
		result.Error = fmt.Errorf("%w: %s", ErrUnsupportedOperationType, operation.Type)
	}

	return result
}

// executeOperation executes a single operation.
func (b *BatchExecutor) executeOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	switch operation.Resource {
	case "charge":
		return b.executeChargeOperation(ctx, operation)
	case "customer":
		return b.executeCustomerOperation(ctx, operation)
	case "invoice_item":
		return b.executeInvoiceItemOperation(ctx, operation)
	case "refund":
		return b.executeRefundOperation(ctx, operation)
	default:
		return &BatchResult{
			ID:    operation.ID,
			Error: fmt.Errorf("%w: %s", ErrUnsupportedResourceType, operation.Resource),
		}
	}
}

// executeChargeOperation handles charge operations, including the capture
// action which other resources do not have.
func (b *BatchExecutor) executeChargeOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	if operation.Type == "capture" {
		result := &BatchResult{ID: operation.ID}

		if data, ok := operation.Data.(*UpdateDataWrapper[ChargeCaptureParams]); ok {
			charge, err := b.client.Charges().Capture(ctx, data.ID, data.Params)
			result.Success = err == nil
			result.Data = charge
			result.Error = err
		} else {
			result.Error = fmt.Errorf("%w capture", ErrInvalidDataTypeCharge)
		}

		return result
	}

	return handleCrudOperation(operation,
		func() (interface{}, error) {
			if params, ok := operation.Data.(*ChargeCreateParams); ok {
				return b.client.Charges().Create(ctx, params)
			}

			return nil, fmt.Errorf("%w create", ErrInvalidDataTypeCharge)
		},
		func() (interface{}, error) {
			if data, ok := operation.Data.(*UpdateDataWrapper[ChargeUpdateParams]); ok {
				return b.client.Charges().Update(ctx, data.ID, data.Params)
			}

			return nil, fmt.Errorf("%w update", ErrInvalidDataTypeCharge)
		},
		func() (interface{}, error) {
			return nil, fmt.Errorf("%w: charge delete", ErrOperationNotSupportedByRes)
		},
		func() (interface{}, error) {
			if id, ok := operation.Data.(string); ok {
				return b.client.Charges().Retrieve(ctx, id, nil)
			}

			return nil, fmt.Errorf("%w retrieve", ErrInvalidDataTypeCharge)
		},
	)
}

// executeCustomerOperation handles customer operations.
func (b *BatchExecutor) executeCustomerOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	return handleCrudOperation(operation,
		func() (interface{}, error) {
			if params, ok := operation.Data.(*CustomerCreateParams); ok {
				return b.client.Customers().Create(ctx, params)
			}

			return nil, fmt.Errorf("%w create", ErrInvalidDataTypeCustomer)
		},
		func() (interface{}, error) {
			if data, ok := operation.Data.(*UpdateDataWrapper[CustomerUpdateParams]); ok {
				return b.client.Customers().Update(ctx, data.ID, data.Params)
			}

			return nil, fmt.Errorf("%w update", ErrInvalidDataTypeCustomer)
		},
		func() (interface{}, error) {
			if id, ok := operation.Data.(string); ok {
				return b.client.Customers().Delete(ctx, id, nil)
			}

			return nil, fmt.Errorf("%w delete", ErrInvalidDataTypeCustomer)
		},
		func() (interface{}, error) {
			if id, ok := operation.Data.(string); ok {
				return b.client.Customers().Retrieve(ctx, id, nil)
			}

			return nil, fmt.Errorf("%w retrieve", ErrInvalidDataTypeCustomer)
		},
	)
}

// executeInvoiceItemOperation handles invoice item operations.
func (b *BatchExecutor) executeInvoiceItemOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	return handleCrudOperation(operation,
		func() (interface{}, error) {
			if params, ok := operation.Data.(*InvoiceItemCreateParams); ok {
				return b.client.InvoiceItems().Create(ctx, params)
			}

			return nil, fmt.Errorf("%w create", ErrInvalidDataTypeInvoiceItem)
		},
		func() (interface{}, error) {
			if data, ok := operation.Data.(*UpdateDataWrapper[InvoiceItemUpdateParams]); ok {
				return b.client.InvoiceItems().Update(ctx, data.ID, data.Params)
			}

			return nil, fmt.Errorf("%w update", ErrInvalidDataTypeInvoiceItem)
		},
		func() (interface{}, error) {
			if id, ok := operation.Data.(string); ok {
				return b.client.InvoiceItems().Delete(ctx, id, nil)
			}

			return nil, fmt.Errorf("%w delete", ErrInvalidDataTypeInvoiceItem)
		},
		func() (interface{}, error) {
			if id, ok := operation.Data.(string); ok {
				return b.client.InvoiceItems().Retrieve(ctx, id, nil)
			}

			return nil, fmt.Errorf("%w retrieve", ErrInvalidDataTypeInvoiceItem)
		},
	)
}

// executeRefundOperation handles refund operations. Refunds cannot be
// deleted.
func (b *BatchExecutor) executeRefundOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	return handleCrudOperation(operation,
		func() (interface{}, error) {
			if params, ok := operation.Data.(*RefundCreateParams); ok {
				return b.client.Refunds().Create(ctx, params)
			}

			return nil, fmt.Errorf("%w create", ErrInvalidDataTypeRefund)
		},
		func() (interface{}, error) {
			if data, ok := operation.Data.(*UpdateDataWrapper[RefundUpdateParams]); ok {
				return b.client.Refunds().Update(ctx, data.ID, data.Params)
			}

			return nil, fmt.Errorf("%w update", ErrInvalidDataTypeRefund)
		},
		func() (interface{}, error) {
			return nil, fmt.Errorf("%w: refund delete", ErrOperationNotSupportedByRes)
		},
		func() (interface{}, error) {
			if id, ok := operation.Data.(string); ok {
				return b.client.Refunds().Retrieve(ctx, id, nil)
			}

			return nil, fmt.Errorf("%w retrieve", ErrInvalidDataTypeRefund)
		},
	)
}

// BatchBuilder helps build batch operations.
type BatchBuilder struct {
	operations []BatchOperation
}

// NewBatchBuilder creates a new batch builder.
func NewBatchBuilder() *BatchBuilder {
	return &BatchBuilder{
		operations: make([]BatchOperation, 0),
	}
}

// AddCreateCharge adds a charge creation operation.
func (b *BatchBuilder) AddCreateCharge(id string, params *ChargeCreateParams) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     "create",
		Resource: "charge",
		Data:     params,
	})

	return b
}

// AddCaptureCharge adds a charge capture operation.
func (b *BatchBuilder) AddCaptureCharge(id, chargeID string, params *ChargeCaptureParams) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     "capture",
		Resource: "charge",
		Data: &UpdateDataWrapper[ChargeCaptureParams]{
			ID:     chargeID,
			Params: params,
		},
	})

	return b
}

// AddRetrieveCharge adds a charge retrieve operation.
func (b *BatchBuilder) AddRetrieveCharge(id, chargeID string) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     "retrieve",
		Resource: "charge",
		Data:     chargeID,
	})

	return b
}

// AddCreateCustomer adds a customer creation operation.
func (b *BatchBuilder) AddCreateCustomer(id string, params *CustomerCreateParams) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     "create",
		Resource: "customer",
		Data:     params,
	})

	return b
}

// AddUpdateCustomer adds a customer update operation.
func (b *BatchBuilder) AddUpdateCustomer(id, customerID string, params *CustomerUpdateParams) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     "update",
		Resource: "customer",
		Data: &UpdateDataWrapper[CustomerUpdateParams]{
			ID:     customerID,
			Params: params,
		},
	})

	return b
}

// AddDeleteCustomer adds a customer deletion operation.
func (b *BatchBuilder) AddDeleteCustomer(id, customerID string) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     "delete",
		Resource: "customer",
		Data:     customerID,
	})

	return b
}

// AddCreateRefund adds a refund creation operation.
func (b *BatchBuilder) AddCreateRefund(id string, params *RefundCreateParams) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     "create",
		Resource: "refund",
		Data:     params,
	})

	return b
}

// AddOperation adds a custom operation.
func (b *BatchBuilder) AddOperation(operation BatchOperation) *BatchBuilder {
	b.operations = append(b.operations, operation)

	return b
}

// Build returns the built operations.
func (b *BatchBuilder) Build() []BatchOperation {
	return b.operations
}
