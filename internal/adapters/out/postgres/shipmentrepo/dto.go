// Package shipmentrepo persists shipment aggregates and their line items.
// It converts between the private-field domain aggregates and flat
// relational rows, re-validating on the way out so corrupt rows are
// rejected at the boundary.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentDTO is the relational shape of a shipment aggregate.
type ShipmentDTO struct {
	ID                  int64      `gorm:"column:shipment_id;primaryKey;autoIncrement"`
	TrackingNumber      string     `gorm:"column:tracking_number;type:varchar(50);uniqueIndex;not null"`
	CustomerID          int64      `gorm:"column:customer_id;not null;index"`
	OriginID            int64      `gorm:"column:origin_id;not null;index"`
	DestinationID       int64      `gorm:"column:destination_id;not null;index"`
	RouteID             *int64     `gorm:"column:route_id;index"`
	VehicleID           *int64     `gorm:"column:vehicle_id;index"`
	DriverID            *int64     `gorm:"column:driver_id;index"`
	Status              string     `gorm:"column:status;type:varchar(20);not null"`
	TotalWeight         float64    `gorm:"column:total_weight;not null"`
	TotalVolume         float64    `gorm:"column:total_volume;not null"`
	ShipmentValue       float64    `gorm:"column:shipment_value;not null"`
	InsuranceRequired   bool       `gorm:"column:insurance_required;not null"`
	SpecialInstructions string     `gorm:"column:special_instructions;type:text"`
	PickupDate          *time.Time `gorm:"column:pickup_date"`
	EstimatedDelivery   *time.Time `gorm:"column:estimated_delivery"`
	ActualDelivery      *time.Time `gorm:"column:actual_delivery"`
	CreatedAt           time.Time  `gorm:"column:created_at;not null"`
}

// TableName overrides GORM's default naming to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ItemDTO is the relational shape of a shipment line item.
type ItemDTO struct {
	ID          int64   `gorm:"column:item_id;primaryKey;autoIncrement"`
	ShipmentID  int64   `gorm:"column:shipment_id;not null;index"`
	Description string  `gorm:"column:description;type:text;not null"`
	Quantity    int     `gorm:"column:quantity;not null"`
	Weight      float64 `gorm:"column:weight;not null"`
	Volume      float64 `gorm:"column:volume;not null"`
	ItemValue   float64 `gorm:"column:item_value;not null"`
	IsHazardous bool    `gorm:"column:is_hazardous;not null"`
	IsFragile   bool    `gorm:"column:is_fragile;not null"`
}

// TableName overrides GORM's default naming to use "shipment_items".
func (ItemDTO) TableName() string {
	return "shipment_items"
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	details := aggregate.Details()
	totals := aggregate.Totals()

	return ShipmentDTO{
		ID:                  aggregate.ID().Int64(),
		TrackingNumber:      aggregate.TrackingNumber(),
		CustomerID:          aggregate.CustomerID().Int64(),
		OriginID:            aggregate.OriginID().Int64(),
		DestinationID:       aggregate.DestinationID().Int64(),
		RouteID:             optionalInt64(details.RouteID),
		VehicleID:           optionalInt64(details.VehicleID),
		DriverID:            optionalInt64(details.DriverID),
		Status:              aggregate.Status().String(),
		TotalWeight:         totals.Weight,
		TotalVolume:         totals.Volume,
		ShipmentValue:       totals.Value,
		InsuranceRequired:   details.InsuranceRequired,
		SpecialInstructions: details.SpecialInstructions,
		PickupDate:          details.PickupDate,
		EstimatedDelivery:   details.EstimatedDelivery,
		ActualDelivery:      details.ActualDelivery,
		CreatedAt:           aggregate.CreatedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.NewID(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	originID, err := kernel.NewID(dto.OriginID)
	if err != nil {
		return nil, err
	}
	destinationID, err := kernel.NewID(dto.DestinationID)
	if err != nil {
		return nil, err
	}

	routeID, err := optionalID(dto.RouteID)
	if err != nil {
		return nil, err
	}
	vehicleID, err := optionalID(dto.VehicleID)
	if err != nil {
		return nil, err
	}
	driverID, err := optionalID(dto.DriverID)
	if err != nil {
		return nil, err
	}

	status, err := shipment.NewStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		dto.TrackingNumber,
		customerID,
		originID,
		destinationID,
		status,
		shipment.Totals{
			Weight: dto.TotalWeight,
			Volume: dto.TotalVolume,
			Value:  dto.ShipmentValue,
		},
		shipment.Details{
			RouteID:             routeID,
			VehicleID:           vehicleID,
			DriverID:            driverID,
			InsuranceRequired:   dto.InsuranceRequired,
			SpecialInstructions: dto.SpecialInstructions,
			PickupDate:          dto.PickupDate,
			EstimatedDelivery:   dto.EstimatedDelivery,
			ActualDelivery:      dto.ActualDelivery,
		},
		dto.CreatedAt,
	)
}

func itemFromDomain(item *shipment.Item) ItemDTO {
	return ItemDTO{
		ID:          item.ID().Int64(),
		ShipmentID:  item.ShipmentID().Int64(),
		Description: item.Description(),
		Quantity:    item.Quantity(),
		Weight:      item.Weight(),
		Volume:      item.Volume(),
		ItemValue:   item.ItemValue(),
		IsHazardous: item.IsHazardous(),
		IsFragile:   item.IsFragile(),
	}
}

func itemToDomain(dto ItemDTO) (*shipment.Item, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.NewID(dto.ShipmentID)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreItem(
		id,
		shipmentID,
		dto.Description,
		dto.Quantity,
		dto.Weight,
		dto.Volume,
		dto.ItemValue,
		dto.IsHazardous,
		dto.IsFragile,
	)
}

func optionalInt64(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}

	raw := id.Int64()

	return &raw
}

func optionalID(raw *int64) (*kernel.ID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.NewID(*raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}
