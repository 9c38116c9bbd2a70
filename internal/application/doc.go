// Package application provides application initialization and dependency wiring.
// It selects the settings holder for the configured strategy and resource, and
// builds the handlers, router, and HTTP server around it so the main package
// only deals with CLI parsing and orchestration.
package application
