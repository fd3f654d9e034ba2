package config

// Input limits enforced by the services
const (
	// MaxNameLength bounds folder and document names
	MaxNameLength = 255

	// MaxRequestBodyBytes bounds the size of any JSON request body
	MaxRequestBodyBytes = 10 << 20 // 10MB
)
