package products

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db/models"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/enums"
	pkgerrors "github.com/kisanbazaar/kisanbazaar-backend/pkg/errors"
)

type stubRepo struct {
	createFn   func(ctx context.Context, product *models.Product) error
	findByIDFn func(ctx context.Context, id uuid.UUID) (*models.Product, error)
	listFn     func(ctx context.Context, filter ListFilter) ([]ProductRow, error)
	updateFn   func(ctx context.Context, id, farmerID uuid.UUID, changes map[string]any) (int64, error)
	deleteFn   func(ctx context.Context, id, farmerID uuid.UUID) (int64, error)
}

func (s *stubRepo) Create(ctx context.Context, product *models.Product) error {
	return s.createFn(ctx, product)
}

func (s *stubRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubRepo) List(ctx context.Context, filter ListFilter) ([]ProductRow, error) {
	return s.listFn(ctx, filter)
}

func (s *stubRepo) Update(ctx context.Context, id, farmerID uuid.UUID, changes map[string]any) (int64, error) {
	return s.updateFn(ctx, id, farmerID, changes)
}

func (s *stubRepo) Delete(ctx context.Context, id, farmerID uuid.UUID) (int64, error) {
	return s.deleteFn(ctx, id, farmerID)
}

type stubUserRepo struct {
	findByIDFn func(ctx context.Context, id uuid.UUID) (*models.User, error)
}

func (s *stubUserRepo) Create(_ context.Context, _ *models.User) error { return nil }

func (s *stubUserRepo) FindByEmail(_ context.Context, _ string) (*models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubUserRepo) UpdatePaymentQR(_ context.Context, _ uuid.UUID, _ string) (int64, error) {
	return 0, nil
}

func (s *stubUserRepo) UpdatePasswordHash(_ context.Context, _ uuid.UUID, _ string) (int64, error) {
	return 0, nil
}

func (s *stubUserRepo) MarkFarmerVerified(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (s *stubUserRepo) ListUnverifiedFarmers(_ context.Context, _ int) ([]models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) ListAll(_ context.Context, _ int) ([]models.User, error) {
	return nil, nil
}

func verifiedFarmer(id uuid.UUID) *models.User {
	return &models.User{
		ID:         id,
		Name:       "Ram Bahadur",
		Email:      "ram@example.com",
		Role:       enums.UserRoleFarmer,
		IsVerified: true,
	}
}

func TestCreateSnapshotsFarmerName(t *testing.T) {
	farmerID := uuid.New()
	userRepo := &stubUserRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*models.User, error) {
			return verifiedFarmer(farmerID), nil
		},
	}

	var created *models.Product
	repo := &stubRepo{
		createFn: func(_ context.Context, product *models.Product) error {
			created = product
			return nil
		},
	}

	svc := NewService(repo, userRepo, nil)

	resp, err := svc.Create(context.Background(), farmerID, CreateProductRequest{
		Name:       "Tomato",
		Category:   "Vegetable",
		PricePaisa: 8000,
		Unit:       "kg",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Ram Bahadur", created.FarmerName)
	assert.Equal(t, "vegetable", created.Category)
	assert.Equal(t, 8000, created.PricePaisa)
	assert.Equal(t, "Ram Bahadur", resp.FarmerName)
}

func TestCreateRejectsUnverifiedFarmer(t *testing.T) {
	farmerID := uuid.New()
	userRepo := &stubUserRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*models.User, error) {
			farmer := verifiedFarmer(farmerID)
			farmer.IsVerified = false
			return farmer, nil
		},
	}
	repo := &stubRepo{
		createFn: func(_ context.Context, _ *models.Product) error {
			t.Fatal("create should not be called for an unverified farmer")
			return nil
		},
	}

	svc := NewService(repo, userRepo, nil)

	_, err := svc.Create(context.Background(), farmerID, CreateProductRequest{
		Name: "Tomato", Category: "vegetable", PricePaisa: 8000, Unit: "kg",
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeForbidden, typed.Code())
}

func TestUpdateForeignProductIsNotFound(t *testing.T) {
	repo := &stubRepo{
		updateFn: func(_ context.Context, _, _ uuid.UUID, _ map[string]any) (int64, error) {
			return 0, nil
		},
	}

	svc := NewService(repo, &stubUserRepo{}, nil)

	name := "Fresh Tomato"
	err := svc.Update(context.Background(), uuid.New(), uuid.New(), UpdateProductRequest{Name: &name})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestUpdateWithNoFieldsIsValidationError(t *testing.T) {
	svc := NewService(&stubRepo{}, &stubUserRepo{}, nil)

	err := svc.Update(context.Background(), uuid.New(), uuid.New(), UpdateProductRequest{})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestUpdateOnlySendsChangedColumns(t *testing.T) {
	var gotChanges map[string]any
	repo := &stubRepo{
		updateFn: func(_ context.Context, _, _ uuid.UUID, changes map[string]any) (int64, error) {
			gotChanges = changes
			return 1, nil
		},
	}

	svc := NewService(repo, &stubUserRepo{}, nil)

	price := 9000
	err := svc.Update(context.Background(), uuid.New(), uuid.New(), UpdateProductRequest{PricePaisa: &price})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"price_paisa": 9000}, gotChanges)
}

func TestDeleteForeignProductIsNotFound(t *testing.T) {
	repo := &stubRepo{
		deleteFn: func(_ context.Context, _, _ uuid.UUID) (int64, error) {
			return 0, nil
		},
	}

	svc := NewService(repo, &stubUserRepo{}, nil)

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestListPassesFilterThrough(t *testing.T) {
	farmerID := uuid.New()
	repo := &stubRepo{
		listFn: func(_ context.Context, filter ListFilter) ([]ProductRow, error) {
			assert.Equal(t, &farmerID, filter.FarmerID)
			assert.Equal(t, "vegetable", filter.Category)
			return []ProductRow{{
				Product: models.Product{
					ID:         uuid.New(),
					FarmerID:   farmerID,
					FarmerName: "Ram Bahadur",
					Name:       "Tomato",
					Category:   "vegetable",
					PricePaisa: 8000,
					Unit:       "kg",
				},
				FarmerVerified: true,
			}}, nil
		},
	}

	svc := NewService(repo, &stubUserRepo{}, nil)

	out, err := svc.List(context.Background(), ListFilter{FarmerID: &farmerID, Category: "vegetable"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Tomato", out[0].Name)
	assert.True(t, out[0].IsVerified)
}

func TestCreateRejectsNonFarmerRole(t *testing.T) {
	userID := uuid.New()
	userRepo := &stubUserRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*models.User, error) {
			return &models.User{
				ID:         userID,
				Name:       "Sita Sharma",
				Email:      "sita@example.com",
				Role:       enums.UserRoleCustomer,
				IsVerified: true,
			}, nil
		},
	}
	repo := &stubRepo{
		createFn: func(_ context.Context, _ *models.Product) error {
			t.Fatal("create should not be called for a non-farmer account")
			return nil
		},
	}

	svc := NewService(repo, userRepo, nil)

	_, err := svc.Create(context.Background(), userID, CreateProductRequest{
		Name: "Tomato", Category: "vegetable", PricePaisa: 8000, Unit: "kg",
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeForbidden, typed.Code())
}

func TestGetReflectsCurrentFarmerVerification(t *testing.T) {
	farmerID := uuid.New()
	productID := uuid.New()
	repo := &stubRepo{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*models.Product, error) {
			assert.Equal(t, productID, id)
			return &models.Product{
				ID:         productID,
				FarmerID:   farmerID,
				FarmerName: "Ram Bahadur",
				Name:       "Tomato",
				Category:   "vegetable",
				PricePaisa: 8000,
				Unit:       "kg",
			}, nil
		},
	}
	userRepo := &stubUserRepo{
		findByIDFn: func(_ context.Context, id uuid.UUID) (*models.User, error) {
			assert.Equal(t, farmerID, id)
			return verifiedFarmer(farmerID), nil
		},
	}

	svc := NewService(repo, userRepo, nil)

	got, err := svc.Get(context.Background(), productID)
	require.NoError(t, err)
	assert.True(t, got.IsVerified)
}
