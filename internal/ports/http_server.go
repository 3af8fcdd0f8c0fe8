// Package ports defines the driving-side interfaces of the application.
package ports

// HTTPServer abstracts the lifecycle of the HTTP facade.
type HTTPServer interface {
	Start() error
	Stop() error
}
