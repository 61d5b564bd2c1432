package service

// Service defines the lifecycle interface for front end subsystems
// Services own long-lived resources: the audio device, the terminal screen
//
// Lifecycle:
//  1. Construction
//  2. Init(args...) - configuration from parsed flags and config
//  3. Start() - launch background goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	// Init configures the service; args are service-specific
	Init(args ...any) error

	// Start begins service operation, called after every service initialized
	Start() error

	// Stop halts service operation; must be idempotent
	Stop() error
}
