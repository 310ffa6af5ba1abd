package model

// Scope identifies the caller a request acts on behalf of.
type Scope struct {
	UserID   string
	Username string
}

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
