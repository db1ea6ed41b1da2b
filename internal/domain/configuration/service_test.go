package configuration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bogenliga/internal/core/apperror"
	"bogenliga/internal/domain/domaintest"
)

type memoryRepo struct {
	*domaintest.Memory[Configuration, *Configuration]
}

func (m *memoryRepo) FindByKey(_ context.Context, key string) (*Configuration, error) {
	return m.Get(key)
}

func strp(s string) *string { return &s }

func TestService_KeyedLifecycle(t *testing.T) {
	repo := &memoryRepo{domaintest.NewMemory[Configuration, *Configuration]("configuration", nil)}
	svc := NewService(repo, nil, nil)
	ctx := domaintest.UserContext(1, 0)

	_, err := svc.Create(ctx, &Configuration{Key: "SMTPHost", Value: strp("mail.example.org")})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &Configuration{Key: "SMTPHost", Value: strp("other")})
	assert.True(t, apperror.HasCode(err, apperror.CodeDuplicate))

	got, err := svc.FindByKey(ctx, "SMTPHost")
	require.NoError(t, err)
	assert.Equal(t, "mail.example.org", *got.Value)

	got.Value = strp("smtp.example.org")
	updated, err := svc.Update(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.Version)

	require.NoError(t, svc.DeleteByKey(ctx, "SMTPHost"))
	_, err = svc.FindByKey(ctx, "SMTPHost")
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_Preconditions(t *testing.T) {
	repo := &memoryRepo{domaintest.NewMemory[Configuration, *Configuration]("configuration", nil)}
	svc := NewService(repo, nil, nil)
	ctx := domaintest.UserContext(1, 0)

	_, err := svc.Create(ctx, &Configuration{Key: "x"})
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.FindByKey(ctx, " ")
	assert.True(t, apperror.IsValidation(err))
}
