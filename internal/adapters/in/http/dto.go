package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
)

func optionalInt64(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}
	value := id.Int64()
	return &value
}

// Wire models for the read endpoints. Read models carry domain types
// (kernel.ID, status value objects); these structs flatten them to the
// JSON shapes clients consume.

type shipmentListItem struct {
	ShipmentID     int64     `json:"shipment_id"`
	TrackingNumber string    `json:"tracking_number"`
	Status         string    `json:"status"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	CreatedAt      time.Time `json:"created_at"`
}

func toShipmentListItems(rows []queries.GetShipmentsQueryResponse) []shipmentListItem {
	out := make([]shipmentListItem, len(rows))
	for i, row := range rows {
		out[i] = shipmentListItem{
			ShipmentID:     row.ID.Int64(),
			TrackingNumber: row.TrackingNumber,
			Status:         row.Status.String(),
			Origin:         row.Origin,
			Destination:    row.Destination,
			CreatedAt:      row.CreatedAt,
		}
	}
	return out
}

type shipmentDetail struct {
	ShipmentID          int64      `json:"shipment_id"`
	TrackingNumber      string     `json:"tracking_number"`
	Status              string     `json:"status"`
	CustomerID          int64      `json:"customer_id"`
	CustomerName        string     `json:"customer_name"`
	CompanyName         string     `json:"company_name"`
	OriginID            int64      `json:"origin_id"`
	Origin              string     `json:"origin"`
	DestinationID       int64      `json:"destination_id"`
	Destination         string     `json:"destination"`
	RouteID             *int64     `json:"route_id"`
	VehicleID           *int64     `json:"vehicle_id"`
	LicensePlate        string     `json:"license_plate"`
	VehicleMake         string     `json:"vehicle_make"`
	VehicleModel        string     `json:"vehicle_model"`
	DriverID            *int64     `json:"driver_id"`
	DriverName          string     `json:"driver_name"`
	TotalWeight         float64    `json:"total_weight"`
	TotalVolume         float64    `json:"total_volume"`
	ShipmentValue       float64    `json:"shipment_value"`
	InsuranceRequired   bool       `json:"insurance_required"`
	SpecialInstructions string     `json:"special_instructions"`
	PickupDate          *time.Time `json:"pickup_date"`
	EstimatedDelivery   *time.Time `json:"estimated_delivery"`
	ActualDelivery      *time.Time `json:"actual_delivery"`
	CreatedAt           time.Time  `json:"created_at"`

	Items          []shipmentItemRow  `json:"items"`
	TrackingEvents []trackingEventRow `json:"tracking_events"`
}

func toShipmentDetail(row queries.GetShipmentQueryResponse) shipmentDetail {
	return shipmentDetail{
		ShipmentID:          row.ID.Int64(),
		TrackingNumber:      row.TrackingNumber,
		Status:              row.Status.String(),
		CustomerID:          row.CustomerID.Int64(),
		CustomerName:        row.CustomerName,
		CompanyName:         row.CompanyName,
		OriginID:            row.OriginID.Int64(),
		Origin:              row.OriginLocation,
		DestinationID:       row.DestinationID.Int64(),
		Destination:         row.DestinationLocation,
		RouteID:             optionalInt64(row.RouteID),
		VehicleID:           optionalInt64(row.VehicleID),
		LicensePlate:        row.LicensePlate,
		VehicleMake:         row.VehicleMake,
		VehicleModel:        row.VehicleModel,
		DriverID:            optionalInt64(row.DriverID),
		DriverName:          row.DriverName,
		TotalWeight:         row.TotalWeight,
		TotalVolume:         row.TotalVolume,
		ShipmentValue:       row.ShipmentValue,
		InsuranceRequired:   row.InsuranceRequired,
		SpecialInstructions: row.SpecialInstructions,
		PickupDate:          row.PickupDate,
		EstimatedDelivery:   row.EstimatedDelivery,
		ActualDelivery:      row.ActualDelivery,
		CreatedAt:           row.CreatedAt,
		Items:               toShipmentItemRows(row.Items),
		TrackingEvents:      toTrackingEventRows(row.TrackingEvents),
	}
}

type shipmentItemRow struct {
	ItemID         int64   `json:"item_id"`
	ShipmentID     int64   `json:"shipment_id"`
	TrackingNumber string  `json:"tracking_number,omitempty"`
	Description    string  `json:"description"`
	Quantity       int     `json:"quantity"`
	Weight         float64 `json:"weight"`
	Volume         float64 `json:"volume"`
	ItemValue      float64 `json:"item_value"`
	IsHazardous    bool    `json:"is_hazardous"`
	IsFragile      bool    `json:"is_fragile"`
}

func toShipmentItemRows(rows []queries.GetShipmentItemsQueryResponse) []shipmentItemRow {
	out := make([]shipmentItemRow, len(rows))
	for i, row := range rows {
		out[i] = shipmentItemRow{
			ItemID:         row.ID.Int64(),
			ShipmentID:     row.ShipmentID.Int64(),
			TrackingNumber: row.TrackingNumber,
			Description:    row.Description,
			Quantity:       row.Quantity,
			Weight:         row.Weight,
			Volume:         row.Volume,
			ItemValue:      row.ItemValue,
			IsHazardous:    row.IsHazardous,
			IsFragile:      row.IsFragile,
		}
	}
	return out
}

type trackingEventRow struct {
	EventID        int64     `json:"event_id"`
	ShipmentID     int64     `json:"shipment_id"`
	EventType      string    `json:"event_type"`
	LocationID     int64     `json:"location_id"`
	Location       string    `json:"location"`
	EventTimestamp time.Time `json:"event_timestamp"`
	RecordedBy     int64     `json:"recorded_by"`
	RecordedByName string    `json:"recorded_by_name"`
	Notes          string    `json:"notes"`
}

func toTrackingEventRows(rows []queries.GetTrackingEventsQueryResponse) []trackingEventRow {
	out := make([]trackingEventRow, len(rows))
	for i, row := range rows {
		out[i] = trackingEventRow{
			EventID:        row.ID.Int64(),
			ShipmentID:     row.ShipmentID.Int64(),
			EventType:      row.EventType.String(),
			LocationID:     row.LocationID.Int64(),
			Location:       row.LocationName,
			EventTimestamp: row.EventTimestamp,
			RecordedBy:     row.RecordedBy.Int64(),
			RecordedByName: row.RecordedByName,
			Notes:          row.Notes,
		}
	}
	return out
}

type vehicleRow struct {
	VehicleID       int64   `json:"vehicle_id"`
	LicensePlate    string  `json:"license_plate"`
	Make            string  `json:"make"`
	Model           string  `json:"model"`
	Year            int     `json:"year"`
	VehicleType     string  `json:"vehicle_type"`
	Status          string  `json:"status"`
	CapacityKg      float64 `json:"capacity_kg"`
	CurrentLocation string  `json:"current_location"`
}

func toVehicleRows(rows []queries.GetVehiclesQueryResponse) []vehicleRow {
	out := make([]vehicleRow, len(rows))
	for i, row := range rows {
		out[i] = vehicleRow{
			VehicleID:       row.ID.Int64(),
			LicensePlate:    row.LicensePlate,
			Make:            row.Make,
			Model:           row.Model,
			Year:            row.Year,
			VehicleType:     row.VehicleType,
			Status:          row.Status.String(),
			CapacityKg:      row.CapacityKg,
			CurrentLocation: row.CurrentLocation,
		}
	}
	return out
}

type driverRow struct {
	DriverID              int64     `json:"driver_id"`
	FullName              string    `json:"full_name"`
	Email                 string    `json:"email"`
	Phone                 string    `json:"phone"`
	LicenseNumber         string    `json:"license_number"`
	LicenseExpiry         time.Time `json:"license_expiry"`
	MedicalCheckDate      time.Time `json:"medical_check_date"`
	TrainingCertification string    `json:"training_certification"`
	Status                string    `json:"status"`
}

func toDriverRows(rows []queries.GetDriversQueryResponse) []driverRow {
	out := make([]driverRow, len(rows))
	for i, row := range rows {
		out[i] = driverRow{
			DriverID:              row.ID.Int64(),
			FullName:              row.FullName,
			Email:                 row.Email,
			Phone:                 row.Phone,
			LicenseNumber:         row.LicenseNumber,
			LicenseExpiry:         row.LicenseExpiry,
			MedicalCheckDate:      row.MedicalCheckDate,
			TrainingCertification: row.TrainingCertification,
			Status:                row.Status.String(),
		}
	}
	return out
}

type customerRow struct {
	CustomerID   int64   `json:"customer_id"`
	FullName     string  `json:"full_name"`
	CompanyName  string  `json:"company_name"`
	TaxID        string  `json:"tax_id"`
	CreditLimit  float64 `json:"credit_limit"`
	PaymentTerms string  `json:"payment_terms"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
}

func toCustomerRows(rows []queries.GetCustomersQueryResponse) []customerRow {
	out := make([]customerRow, len(rows))
	for i, row := range rows {
		out[i] = customerRow{
			CustomerID:   row.ID.Int64(),
			FullName:     row.FullName,
			CompanyName:  row.CompanyName,
			TaxID:        row.TaxID,
			CreditLimit:  row.CreditLimit,
			PaymentTerms: row.PaymentTerms,
			Email:        row.Email,
			Phone:        row.Phone,
		}
	}
	return out
}

type locationRow struct {
	LocationID   int64    `json:"location_id"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Country      string   `json:"country"`
	PostalCode   string   `json:"postal_code"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	LocationType string   `json:"location_type"`
}

func toLocationRows(rows []queries.GetLocationsQueryResponse) []locationRow {
	out := make([]locationRow, len(rows))
	for i, row := range rows {
		out[i] = locationRow{
			LocationID:   row.ID.Int64(),
			Address:      row.Address,
			City:         row.City,
			State:        row.State,
			Country:      row.Country,
			PostalCode:   row.PostalCode,
			Latitude:     row.Latitude,
			Longitude:    row.Longitude,
			LocationType: row.LocationType,
		}
	}
	return out
}

type warehouseRow struct {
	WarehouseID      int64   `json:"warehouse_id"`
	WarehouseName    string  `json:"warehouse_name"`
	Capacity         float64 `json:"capacity"`
	Location         string  `json:"location"`
	CurrentOccupancy float64 `json:"current_occupancy"`
}

func toWarehouseRows(rows []queries.GetWarehousesQueryResponse) []warehouseRow {
	out := make([]warehouseRow, len(rows))
	for i, row := range rows {
		out[i] = warehouseRow{
			WarehouseID:      row.ID.Int64(),
			WarehouseName:    row.WarehouseName,
			Capacity:         row.Capacity,
			Location:         row.Location,
			CurrentOccupancy: row.CurrentOccupancy,
		}
	}
	return out
}

type routeRow struct {
	RouteID              int64   `json:"route_id"`
	RouteName            string  `json:"route_name"`
	OriginID             int64   `json:"origin_id"`
	DestinationID        int64   `json:"destination_id"`
	DistanceKm           float64 `json:"distance_km"`
	EstimatedDurationMin int     `json:"estimated_duration_min"`
	Status               string  `json:"status"`
	HazardLevel          string  `json:"hazard_level"`
	StartLocation        string  `json:"start_location"`
	EndLocation          string  `json:"end_location"`
}

func toRouteRows(rows []queries.GetRoutesQueryResponse) []routeRow {
	out := make([]routeRow, len(rows))
	for i, row := range rows {
		out[i] = routeRow{
			RouteID:              row.ID.Int64(),
			RouteName:            row.RouteName,
			OriginID:             row.OriginID.Int64(),
			DestinationID:        row.DestinationID.Int64(),
			DistanceKm:           row.DistanceKm,
			EstimatedDurationMin: row.EstimatedDurationMin,
			Status:               row.Status,
			HazardLevel:          row.HazardLevel,
			StartLocation:        row.StartLocation,
			EndLocation:          row.EndLocation,
		}
	}
	return out
}
