package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bogenliga/internal/core/apperror"
	appctx "bogenliga/internal/core/context"
	"bogenliga/internal/domain"
)

type widget struct {
	ID      int64
	Name    string
	Version int64
}

func (w *widget) Validate(context.Context) error {
	return domain.RequireNotBlank("name", w.Name)
}

func (w *widget) EntityKey() any { return w.ID }

type widgetRepo struct {
	items   map[int64]*widget
	nextID  int64
	deletes int
}

func newWidgetRepo() *widgetRepo {
	return &widgetRepo{items: map[int64]*widget{}, nextID: 1}
}

func (r *widgetRepo) FindAll(context.Context) ([]*widget, error) {
	out := make([]*widget, 0, len(r.items))
	for i := int64(1); i < r.nextID; i++ {
		if w, ok := r.items[i]; ok {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *widgetRepo) Create(_ context.Context, w *widget, _ int64) (*widget, error) {
	c := *w
	c.ID = r.nextID
	r.nextID++
	r.items[c.ID] = &c
	return &c, nil
}

func (r *widgetRepo) Update(_ context.Context, w *widget, _ int64) (*widget, error) {
	stored, ok := r.items[w.ID]
	if !ok {
		return nil, apperror.NewNotFound("widget", w.ID)
	}
	if stored.Version != w.Version {
		return nil, apperror.NewConcurrentModification("widget", w.ID)
	}
	c := *w
	c.Version++
	r.items[c.ID] = &c
	return &c, nil
}

func (r *widgetRepo) Delete(_ context.Context, w *widget) error {
	if _, ok := r.items[w.ID]; !ok {
		return apperror.NewNotFound("widget", w.ID)
	}
	delete(r.items, w.ID)
	r.deletes++
	return nil
}

type recorder struct {
	changes []domain.Change
	err     error
}

func (r *recorder) Record(_ context.Context, c domain.Change) error {
	if r.err != nil {
		return r.err
	}
	r.changes = append(r.changes, c)
	return nil
}

func userCtx() context.Context {
	return appctx.WithUser(context.Background(), &appctx.UserContext{UserID: 7})
}

func newService(repo *widgetRepo, rec domain.ChangeRecorder) *domain.CatalogService[*widget] {
	return domain.NewCatalogService(domain.CatalogServiceConfig[*widget]{
		Repo:       repo,
		Changes:    rec,
		EntityName: "widget",
	})
}

func TestCatalogService_CreateRecordsChange(t *testing.T) {
	repo := newWidgetRepo()
	rec := &recorder{}
	svc := newService(repo, rec)

	created, err := svc.Create(userCtx(), &widget{Name: "bow"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	require.Len(t, rec.changes, 1)
	assert.Equal(t, domain.ChangeCreate, rec.changes[0].Action)
	assert.Equal(t, int64(1), rec.changes[0].EntityID)
	assert.Equal(t, int64(7), rec.changes[0].UserID)
}

func TestCatalogService_RequiresActingUser(t *testing.T) {
	svc := newService(newWidgetRepo(), nil)

	_, err := svc.Create(context.Background(), &widget{Name: "bow"})
	assert.True(t, apperror.IsValidation(err))
}

func TestCatalogService_ValidationStopsBeforeRepository(t *testing.T) {
	repo := newWidgetRepo()
	svc := newService(repo, nil)

	_, err := svc.Create(userCtx(), &widget{Name: "  "})
	assert.True(t, apperror.IsValidation(err))
	assert.Empty(t, repo.items)
}

func TestCatalogService_HooksAbort(t *testing.T) {
	repo := newWidgetRepo()
	svc := newService(repo, nil)
	svc.Hooks().OnBeforeCreate(func(context.Context, *widget) error {
		return apperror.NewPermissionDenied("CAN_MODIFY_STAMMDATEN")
	})

	_, err := svc.Create(userCtx(), &widget{Name: "bow"})
	assert.True(t, apperror.IsForbidden(err))
	assert.Empty(t, repo.items)
}

func TestCatalogService_UpdateIncrementsVersion(t *testing.T) {
	repo := newWidgetRepo()
	svc := newService(repo, nil)
	ctx := userCtx()

	created, err := svc.Create(ctx, &widget{Name: "bow"})
	require.NoError(t, err)

	created.Name = "recurve"
	updated, err := svc.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.Version)

	updated.Name = "compound"
	again, err := svc.Update(ctx, updated)
	require.NoError(t, err)
	assert.Equal(t, int64(2), again.Version)
	assert.Equal(t, int64(2), repo.items[created.ID].Version)

	_, err = svc.Update(ctx, created)
	assert.True(t, apperror.IsConcurrentModification(err))
}

func TestCatalogService_WritesWithoutRecorder(t *testing.T) {
	repo := newWidgetRepo()
	svc := newService(repo, nil)
	ctx := userCtx()

	created, err := svc.Create(ctx, &widget{Name: "bow"})
	require.NoError(t, err)
	_, err = svc.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, int64(1), repo.items[created.ID].Version)
}

func TestCatalogService_DeleteThenMissing(t *testing.T) {
	repo := newWidgetRepo()
	rec := &recorder{}
	svc := newService(repo, rec)
	ctx := userCtx()

	created, err := svc.Create(ctx, &widget{Name: "bow"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created))

	err = svc.Delete(ctx, created)
	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, domain.ChangeDelete, rec.changes[len(rec.changes)-1].Action)
}

func TestCatalogService_RecorderFailureFailsWrite(t *testing.T) {
	svc := newService(newWidgetRepo(), &recorder{err: errors.New("disk full")})

	_, err := svc.Create(userCtx(), &widget{Name: "bow"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record widget change")
}

func TestCatalogService_FindAllEmpty(t *testing.T) {
	svc := newService(newWidgetRepo(), nil)

	items, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestPreconditions(t *testing.T) {
	assert.NoError(t, domain.RequireNonNegative("id", 0))
	assert.True(t, apperror.IsValidation(domain.RequireNonNegative("id", -1)))
	assert.True(t, apperror.IsValidation(domain.RequirePositive("id", 0)))
	assert.True(t, apperror.IsValidation(domain.RequireRange("arrow", 11, 0, 10)))
	assert.NoError(t, domain.RequireRange("arrow", 10, 0, 10))

	first := domain.RequireNotBlank("name", "")
	assert.Equal(t, first, domain.FirstError(nil, first, domain.RequirePositive("id", 0)))
}
