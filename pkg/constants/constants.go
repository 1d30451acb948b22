package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"

	ServiceName = "reportcare_backend"
)
