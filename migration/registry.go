package migration

import "fmt"

// ModelRegistry exposes the application's models to schema tooling
// without the migration package importing them directly.
type ModelRegistry interface {
	GetModels() map[string]interface{}
}

// GlobalModelRegistry is set by the CLI entrypoint before commands run.
var GlobalModelRegistry ModelRegistry

// ValidateRegistry fails when no model registry has been wired up.
func ValidateRegistry() error {
	if GlobalModelRegistry == nil {
		return fmt.Errorf("no model registry provided: implement migration.ModelRegistry and set it in your main.go")
	}
	return nil
}
