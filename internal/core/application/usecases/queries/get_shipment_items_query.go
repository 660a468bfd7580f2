package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetShipmentItemsQueryIsNotConstructed = errors.New(
		"GetShipmentItemsQuery must be created via NewGetShipmentItemsQuery constructor",
	)
	ErrGetAllShipmentItemsQueryIsNotConstructed = errors.New(
		"GetAllShipmentItemsQuery must be created via NewGetAllShipmentItemsQuery constructor",
	)
)

// GetShipmentItemsQuery retrieves the line items of one shipment.
type GetShipmentItemsQuery struct {
	shipmentID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetShipmentItemsQuery creates the query for a shipment's items.
func NewGetShipmentItemsQuery(shipmentID kernel.ID) (GetShipmentItemsQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentItemsQuery{}, err
	}

	return GetShipmentItemsQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentItemsQueryIsNotConstructed)
}

// ShipmentID returns the shipment whose items are requested.
func (q GetShipmentItemsQuery) ShipmentID() kernel.ID { return q.shipmentID }

// GetShipmentItemsQueryResponse is one line item in the read model.
// TrackingNumber is only populated by the all-items query, which joins the
// owning shipment for display.
type GetShipmentItemsQueryResponse struct {
	ID             kernel.ID
	ShipmentID     kernel.ID
	TrackingNumber string
	Description    string
	Quantity       int
	Weight         float64
	Volume         float64
	ItemValue      float64
	IsHazardous    bool
	IsFragile      bool
}

// GetAllShipmentItemsQuery retrieves every line item across all shipments,
// each joined with its shipment's tracking number.
type GetAllShipmentItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllShipmentItemsQuery creates the all-items query.
func NewGetAllShipmentItemsQuery() GetAllShipmentItemsQuery {
	return GetAllShipmentItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllShipmentItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllShipmentItemsQueryIsNotConstructed)
}

// GetShipmentItemsQueryHandler reads line items for a single shipment.
type GetShipmentItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentItemsQueryHandler creates a handler for per-shipment item
// queries.
func NewGetShipmentItemsQueryHandler(db *gorm.DB) GetShipmentItemsQueryHandler {
	return GetShipmentItemsQueryHandler{db: db}
}

// Handle executes the query. Items come back in insertion order.
func (h GetShipmentItemsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentItemsQuery,
) ([]GetShipmentItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return fetchShipmentItems(ctx, h.db, query.ShipmentID())
}

// GetAllShipmentItemsQueryHandler reads the full item list across
// shipments.
type GetAllShipmentItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllShipmentItemsQueryHandler creates a handler for the all-items
// query.
func NewGetAllShipmentItemsQueryHandler(db *gorm.DB) GetAllShipmentItemsQueryHandler {
	return GetAllShipmentItemsQueryHandler{db: db}
}

// Handle executes the query, joining each item's owning shipment for its
// tracking number.
func (h GetAllShipmentItemsQueryHandler) Handle(
	ctx context.Context,
	query GetAllShipmentItemsQuery,
) ([]GetShipmentItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetShipmentItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			si.item_id,
			si.shipment_id,
			s.tracking_number,
			si.description,
			si.quantity,
			si.weight,
			si.volume,
			si.item_value,
			si.is_hazardous,
			si.is_fragile
		FROM shipment_items si
		JOIN shipments s ON si.shipment_id = s.shipment_id
		ORDER BY si.item_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetShipmentItemsQueryResponse
		var itemID, shipmentID int64

		err = rows.Scan(
			&itemID,
			&shipmentID,
			&item.TrackingNumber,
			&item.Description,
			&item.Quantity,
			&item.Weight,
			&item.Volume,
			&item.ItemValue,
			&item.IsHazardous,
			&item.IsFragile,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.NewID(itemID); err != nil {
			return nil, err
		}
		if item.ShipmentID, err = kernel.NewID(shipmentID); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// fetchShipmentItems loads one shipment's items. Shared with the shipment
// detail query.
func fetchShipmentItems(ctx context.Context, db *gorm.DB, shipmentID kernel.ID) ([]GetShipmentItemsQueryResponse, error) {
	items := make([]GetShipmentItemsQueryResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			item_id,
			shipment_id,
			description,
			quantity,
			weight,
			volume,
			item_value,
			is_hazardous,
			is_fragile
		FROM shipment_items
		WHERE shipment_id = ?
		ORDER BY item_id
	`, shipmentID.Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetShipmentItemsQueryResponse
		var itemID, ownerID int64

		err = rows.Scan(
			&itemID,
			&ownerID,
			&item.Description,
			&item.Quantity,
			&item.Weight,
			&item.Volume,
			&item.ItemValue,
			&item.IsHazardous,
			&item.IsFragile,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.NewID(itemID); err != nil {
			return nil, err
		}
		if item.ShipmentID, err = kernel.NewID(ownerID); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
