package dto

import "bogenliga/internal/domain/configuration"

// ConfigurationRequest is the body of POST and PUT /v1/configuration.
type ConfigurationRequest struct {
	Key     string  `json:"key"`
	Value   *string `json:"value"`
	Version int64   `json:"version"`
}

// ToDomain maps the request. key, when non-empty, overrides the body key.
func (r ConfigurationRequest) ToDomain(key string) *configuration.Configuration {
	if key == "" {
		key = r.Key
	}
	return &configuration.Configuration{
		Key:         key,
		Value:       r.Value,
		AuditFields: versioned(r.Version),
	}
}

// ConfigurationResponse is a configuration entry as returned by the API.
type ConfigurationResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	AuditResponse
}

// FromConfiguration maps a configuration entry.
func FromConfiguration(c *configuration.Configuration) ConfigurationResponse {
	resp := ConfigurationResponse{Key: c.Key, AuditResponse: FromAudit(c.AuditFields)}
	if c.Value != nil {
		resp.Value = *c.Value
	}
	return resp
}
