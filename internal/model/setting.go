package model

// Setting keys known to the application. Values are stored as plain
// strings; maintenance_mode uses "true"/"false".
const (
	SettingMaintenanceMode = "maintenance_mode"
	SettingUPIID           = "upi_id"
	SettingUPIMerchantName = "upi_merchant_name"
	SettingUPIPhone        = "upi_phone"
)

// Setting is one row of the process-wide key/value configuration
// store.
type Setting struct {
	Key   string // settings.key
	Value string // settings.value
}
