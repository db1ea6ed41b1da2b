package catalog_repo

import (
	"context"

	"bogenliga/internal/core/entity"
	"bogenliga/internal/domain/configuration"
	"bogenliga/internal/infrastructure/storage/postgres"
	"bogenliga/internal/infrastructure/storage/postgres/query"
)

const (
	configurationTable = "configuration"
	configurationKey   = "configuration_key"
)

type configurationRecord struct {
	Key   string
	Value string
	entity.AuditFields
}

var configurationConfig = newConfig(EntityConfig[configurationRecord]{
	Entity: "configuration",
	Table:  configurationTable,
	Keys:   []string{configurationKey},
	Audit:  func(r *configurationRecord) *entity.AuditFields { return &r.AuditFields },
},
	Col(configurationKey, func(r *configurationRecord) *string { return &r.Key }),
	Col("configuration_value", func(r *configurationRecord) *string { return &r.Value }),
)

var (
	configurationFindAll   = query.SelectAll(configurationTable).OrderBy(configurationKey).Compose()
	configurationFindByKey = query.SelectAll(configurationTable).WhereEquals(configurationKey).Compose()
)

// ConfigurationRepo implements configuration.Repository.
type ConfigurationRepo struct {
	*mappedRepo[configurationRecord, *configuration.Configuration]
}

// NewConfigurationRepo creates a new configuration repository.
func NewConfigurationRepo(db postgres.QuerierProvider) *ConfigurationRepo {
	return &ConfigurationRepo{newMappedRepo(db, configurationConfig, configurationFindAll, toConfiguration, fromConfiguration)}
}

// FindByKey retrieves a setting by key.
func (r *ConfigurationRepo) FindByKey(ctx context.Context, key string) (*configuration.Configuration, error) {
	return r.one(ctx, configurationFindByKey, key)
}

func toConfiguration(rec *configurationRecord) *configuration.Configuration {
	value := rec.Value
	return &configuration.Configuration{
		Key:         rec.Key,
		Value:       &value,
		AuditFields: rec.AuditFields,
	}
}

func fromConfiguration(c *configuration.Configuration) *configurationRecord {
	rec := &configurationRecord{Key: c.Key, AuditFields: c.AuditFields}
	if c.Value != nil {
		rec.Value = *c.Value
	}
	return rec
}
