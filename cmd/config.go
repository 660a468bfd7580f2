package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AdminUserID attributes automatic tracking events (the pickup recorded
	// on shipment creation, the delivery recorded when a shipment is marked
	// delivered) to a system account.
	AdminUserID int64

	// BcryptCost is the cost factor for hashing customer and driver
	// passwords.
	BcryptCost int

	// TrackingIssueStatus and TrackingDelayStatus override the shipment
	// status derived from issue and delay events. Empty keeps the default
	// (in_transit).
	TrackingIssueStatus string
	TrackingDelayStatus string
}
