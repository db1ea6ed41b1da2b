// Package configuration provides key/value settings of the application.
package configuration

import (
	"context"

	"bogenliga/internal/core/apperror"
	"bogenliga/internal/core/entity"
	"bogenliga/internal/domain"
)

// Configuration is one setting.
type Configuration struct {
	Key   string
	Value *string

	entity.AuditFields
}

// Validate implements entity.Validatable.
func (c *Configuration) Validate(ctx context.Context) error {
	if err := domain.RequireNotBlank("key", c.Key); err != nil {
		return err
	}
	if c.Value == nil {
		return apperror.NewValidation("value must not be null").WithDetail("field", "value")
	}
	return nil
}

// EntityKey implements domain.Entity. Settings are identified by their key.
func (c *Configuration) EntityKey() any {
	return c.Key
}
