package constants

// Application Information
const (
	AppName    = "Almas Pay Backend"
	AppVersion = "1.0.0"
)

// Environment Types
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// User Roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Default Application Settings
const (
	DefaultPort        = "3000"
	DefaultEnvironment = EnvDevelopment
)
