package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads orders with plain SQL, bypassing the aggregate.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order. An unknown actor and a customer asking for
// someone else's order both get errs.PermissionDeniedError; a missing order
// gets errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	role, err := actorRole(db, query.ActorID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if !role.IsKnown() {
		return GetOrderQueryResponse{}, errs.NewPermissionDeniedError("role " + role.String() + " may not read orders")
	}

	var (
		id, ownerID     uuid.UUID
		status, method  string
		total, discount decimal.Decimal
		trackingCode    sql.NullString
		createdAt       time.Time
	)
	err = db.Raw(`
		SELECT
			id,
			owner_id,
			status,
			total,
			discount,
			payment_method,
			tracking_code,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row().Scan(&id, &ownerID, &status, &total, &discount, &method, &trackingCode, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{ID: query.OrderID(), CreatedAt: createdAt}
	if resp.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if role == actor.Customer && !resp.OwnerID.IsEqual(query.ActorID()) {
		return GetOrderQueryResponse{}, errs.NewPermissionDeniedError("order does not belong to you")
	}

	totalMoney, totalErr := kernel.NewMoney(total)
	discountMoney, discountErr := kernel.NewMoney(discount)
	parsedStatus, statusErr := order.ParseStatus(status)
	parsedMethod, methodErr := order.ParsePaymentMethod(method)
	if err = errors.Join(totalErr, discountErr, statusErr, methodErr); err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Total = totalMoney
	resp.Discount = discountMoney
	resp.Status = parsedStatus
	resp.PaymentMethod = parsedMethod
	if trackingCode.Valid {
		code := trackingCode.String
		resp.TrackingCode = &code
	}

	if resp.LineItems, err = lineItems(db, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func lineItems(db *gorm.DB, orderID kernel.UUID) ([]GetOrderLineItemResponse, error) {
	rows, err := db.Raw(`
		SELECT
			id,
			product_id,
			unit_price,
			quantity
		FROM order_line_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetOrderLineItemResponse, 0)
	for rows.Next() {
		var (
			id, productID uuid.UUID
			unitPrice     decimal.Decimal
			quantity      int
		)
		if err = rows.Scan(&id, &productID, &unitPrice, &quantity); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		pID, productErr := kernel.UUIDFromBytes(productID[:])
		price, priceErr := kernel.NewMoney(unitPrice)
		if err = errors.Join(idErr, productErr, priceErr); err != nil {
			return nil, err
		}

		items = append(items, GetOrderLineItemResponse{
			ID:        itemID,
			ProductID: pID,
			UnitPrice: price,
			Quantity:  quantity,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// actorRole looks the caller up in the actors table.
func actorRole(db *gorm.DB, actorID kernel.UUID) (actor.Role, error) {
	var role string
	err := db.Raw(`SELECT role FROM actors WHERE id = ?`, actorID.Bytes()).Row().Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return actor.RoleUnknown, errs.NewPermissionDeniedErrorWithCause("unknown actor",
			errs.NewObjectNotFoundError("actor", actorID.String()))
	}
	if err != nil {
		return actor.RoleUnknown, err
	}
	return actor.ParseRole(role), nil
}
