package impl

import (
	"context"
	"testing"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/constants"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	mockRepo "catalog/internal/mocks/repository"
	mockSvc "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// skuServiceFixtures holds all test dependencies for sku service tests.
type skuServiceFixtures struct {
	service   usecase.SkuUsecase
	txManager *mockRepo.MockTransactionManager
	txFactory *mockRepo.MockRepositoryFactory
	skuRepo   *mockRepo.MockSkuRepository
	labels    *mockSvc.MockLabelService
	publisher *mockSvc.MockEventPublisher
}

func createTestSkuService(t *testing.T) skuServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	txFactory := mockRepo.NewMockRepositoryFactory(t)
	skuRepo := mockRepo.NewMockSkuRepository(t)
	labels := mockSvc.NewMockLabelService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewSkuService(SkuServiceParams{
		TxManager: txManager,
		SkuRepo:   skuRepo,
		Labels:    labels,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	return skuServiceFixtures{
		service:   service,
		txManager: txManager,
		txFactory: txFactory,
		skuRepo:   skuRepo,
		labels:    labels,
		publisher: publisher,
	}
}

// expectTransaction runs the transaction body against the fixture's SKU repository.
func (f skuServiceFixtures) expectTransaction() {
	f.txFactory.EXPECT().SkuRepo().Return(f.skuRepo).Maybe()
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.txFactory)
		}).Once()
}

func newTestSkuInput() *usecase.SkuInput {
	return &usecase.SkuInput{
		SkuCode:     "  TS-001 ",
		Name:        "classic   TEE",
		StyleName:   "crew neck",
		Colour:      "NAVY blue",
		Description: "Heavyweight cotton",
		Quantity:    12,
		Price:       19.99,
		Category:    "t-shirts",
		Supplier:    "Acme",
		Size:        "M",
	}
}

func TestSkuService_CreateSku_Success(t *testing.T) {
	fx := createTestSkuService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")
	fx.expectTransaction()

	fx.skuRepo.EXPECT().FindByCode(ctx, "TS-001").Return(nil, repository.ErrSkuNotFound).Once()
	fx.skuRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Sku")).
		Run(func(_ context.Context, sku *entity.Sku) { sku.ID = 7 }).
		Return(nil).Once()
	fx.publisher.EXPECT().
		PublishSkuEvent(ctx, mock.MatchedBy(func(e *service.SkuEvent) bool {
			_, err := uuid.Parse(e.EventID)
			return err == nil &&
				e.Type == constants.SkuEventCreated &&
				e.RequestID == "req-123" &&
				e.SkuID == 7 &&
				e.SkuCode == "TS-001"
		})).
		Return(nil).Once()

	sku, err := fx.service.CreateSku(ctx, newTestSkuInput())

	require.NoError(t, err)
	assert.Equal(t, int64(7), sku.ID)
	assert.Equal(t, "TS-001", sku.SkuCode)
	assert.Equal(t, "Classic Tee", sku.Name)
	assert.Equal(t, "Crew Neck", sku.StyleName)
	assert.Equal(t, "Navy Blue", sku.Colour)
	assert.Equal(t, "T-shirts", sku.Category)
	assert.Equal(t, "Heavyweight cotton", sku.Description)
	assert.Equal(t, "Acme", sku.Supplier)
	assert.Equal(t, "M", sku.Size)
}

func TestSkuService_CreateSku_CodeConflict(t *testing.T) {
	fx := createTestSkuService(t)
	ctx := context.Background()
	fx.expectTransaction()

	fx.skuRepo.EXPECT().FindByCode(ctx, "TS-001").Return(&entity.Sku{ID: 1, SkuCode: "TS-001"}, nil).Once()

	sku, err := fx.service.CreateSku(ctx, newTestSkuInput())

	assert.Nil(t, sku)
	assert.True(t, errors.Is(err, domainerrors.ErrSkuCodeConflict))
	fx.skuRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishSkuEvent", mock.Anything, mock.Anything)
}

func TestSkuService_CreateSku_UniqueIndexRace(t *testing.T) {
	fx := createTestSkuService(t)
	ctx := context.Background()
	fx.expectTransaction()

	fx.skuRepo.EXPECT().FindByCode(ctx, "TS-001").Return(nil, repository.ErrSkuNotFound).Once()
	fx.skuRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateSkuCode).Once()

	_, err := fx.service.CreateSku(ctx, newTestSkuInput())

	assert.True(t, errors.Is(err, domainerrors.ErrSkuCodeConflict))
}

func TestSkuService_CreateSku_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestSkuService(t)
	ctx := context.Background()
	fx.expectTransaction()

	fx.skuRepo.EXPECT().FindByCode(ctx, "TS-001").Return(nil, repository.ErrSkuNotFound).Once()
	fx.skuRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
	fx.publisher.EXPECT().PublishSkuEvent(ctx, mock.Anything).Return(errors.New("broker down")).Once()

	sku, err := fx.service.CreateSku(ctx, newTestSkuInput())

	require.NoError(t, err)
	assert.NotNil(t, sku)
}

func TestSkuService_GetSku(t *testing.T) {
	tests := []struct {
		name      string
		repoSku   *entity.Sku
		repoErr   error
		expectErr error
	}{
		{name: "found", repoSku: &entity.Sku{ID: 3, SkuCode: "TS-003"}},
		{name: "not found", repoErr: repository.ErrSkuNotFound, expectErr: domainerrors.ErrSkuNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSkuService(t)
			ctx := context.Background()

			fx.skuRepo.EXPECT().FindByID(ctx, int64(3)).Return(tt.repoSku, tt.repoErr).Once()

			sku, err := fx.service.GetSku(ctx, 3)

			if tt.expectErr != nil {
				assert.Nil(t, sku)
				assert.True(t, errors.Is(err, tt.expectErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.repoSku, sku)
		})
	}
}

func TestSkuService_GetSkuByCode_NotFound(t *testing.T) {
	fx := createTestSkuService(t)
	ctx := context.Background()

	fx.skuRepo.EXPECT().FindByCode(ctx, "NOPE").Return(nil, repository.ErrSkuNotFound).Once()

	_, err := fx.service.GetSkuByCode(ctx, "NOPE")

	assert.True(t, errors.Is(err, domainerrors.ErrSkuNotFound))
}

func TestSkuService_UpdateSku_Success(t *testing.T) {
	fx := createTestSkuService(t)
	ctx := context.Background()
	fx.expectTransaction()

	existing := &entity.Sku{ID: 7, SkuCode: "TS-001", Name: "Old", Size: "S"}
	fx.skuRepo.EXPECT().FindByID(ctx, int64(7)).Return(existing, nil).Once()
	fx.skuRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(sku *entity.Sku) bool {
			return sku.ID == 7 && sku.Name == "Classic Tee" && sku.Size == "M"
		})).
		Return(nil).Once()
	fx.publisher.EXPECT().
		PublishSkuEvent(ctx, mock.MatchedBy(func(e *service.SkuEvent) bool {
			return e.Type == constants.SkuEventUpdated && e.SkuID == 7
		})).
		Return(nil).Once()

	sku, err := fx.service.UpdateSku(ctx, 7, newTestSkuInput())

	require.NoError(t, err)
	assert.Equal(t, "Classic Tee", sku.Name)
	fx.skuRepo.AssertNotCalled(t, "FindByCode", mock.Anything, mock.Anything)
}

func TestSkuService_UpdateSku_NotFound(t *testing.T) {
	fx := createTestSkuService(t)
	ctx := context.Background()
	fx.expectTransaction()

	fx.skuRepo.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrSkuNotFound).Once()

	_, err := fx.service.UpdateSku(ctx, 9, newTestSkuInput())

	assert.True(t, errors.Is(err, domainerrors.ErrSkuNotFound))
}

func TestSkuService_UpdateSku_CodeTaken(t *testing.T) {
	fx := createTestSkuService(t)
	ctx := context.Background()
	fx.expectTransaction()

	fx.skuRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.Sku{ID: 7, SkuCode: "TS-000"}, nil).Once()
	fx.skuRepo.EXPECT().FindByCode(ctx, "TS-001").Return(&entity.Sku{ID: 8, SkuCode: "TS-001"}, nil).Once()

	_, err := fx.service.UpdateSku(ctx, 7, newTestSkuInput())

	assert.True(t, errors.Is(err, domainerrors.ErrSkuCodeConflict))
	fx.skuRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSkuService_DeleteSku(t *testing.T) {
	fx := createTestSkuService(t)
	ctx := context.Background()
	fx.expectTransaction()

	fx.skuRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.Sku{ID: 7, SkuCode: "TS-001"}, nil).Once()
	fx.skuRepo.EXPECT().Delete(ctx, int64(7)).Return(nil).Once()
	fx.publisher.EXPECT().
		PublishSkuEvent(ctx, mock.MatchedBy(func(e *service.SkuEvent) bool {
			return e.Type == constants.SkuEventDeleted && e.SkuCode == "TS-001"
		})).
		Return(nil).Once()

	assert.NoError(t, fx.service.DeleteSku(ctx, 7))
}

func TestSkuService_DeleteSku_NotFound(t *testing.T) {
	fx := createTestSkuService(t)
	ctx := context.Background()
	fx.expectTransaction()

	fx.skuRepo.EXPECT().FindByID(ctx, int64(7)).Return(nil, repository.ErrSkuNotFound).Once()

	err := fx.service.DeleteSku(ctx, 7)

	assert.True(t, errors.Is(err, domainerrors.ErrSkuNotFound))
	fx.skuRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSkuService_SearchSkus(t *testing.T) {
	all := []*entity.Sku{{ID: 1}, {ID: 2}}

	t.Run("blank term lists everything", func(t *testing.T) {
		fx := createTestSkuService(t)
		ctx := context.Background()
		fx.skuRepo.EXPECT().FindAll(ctx).Return(all, nil).Once()

		skus, err := fx.service.SearchSkus(ctx, "   ")

		require.NoError(t, err)
		assert.Equal(t, all, skus)
		fx.skuRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("term is trimmed", func(t *testing.T) {
		fx := createTestSkuService(t)
		ctx := context.Background()
		fx.skuRepo.EXPECT().Search(ctx, "tee").Return(all[:1], nil).Once()

		skus, err := fx.service.SearchSkus(ctx, " tee ")

		require.NoError(t, err)
		assert.Len(t, skus, 1)
	})
}

func TestSkuService_ListCategories(t *testing.T) {
	fx := createTestSkuService(t)
	ctx := context.Background()
	fx.skuRepo.EXPECT().ListCategories(ctx).Return([]string{"Hoodies", "T-shirts"}, nil).Once()

	categories, err := fx.service.ListCategories(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"Hoodies", "T-shirts"}, categories)
}

func TestSkuService_ListSkusByCategory_Error(t *testing.T) {
	fx := createTestSkuService(t)
	ctx := context.Background()
	fx.skuRepo.EXPECT().FindByCategory(ctx, "Hoodies").Return(nil, errors.New("connection reset")).Once()

	_, err := fx.service.ListSkusByCategory(ctx, "Hoodies")

	assert.ErrorContains(t, err, "failed to list skus by category")
}

func TestSkuService_GenerateLabel(t *testing.T) {
	fx := createTestSkuService(t)
	ctx := context.Background()
	sku := &entity.Sku{ID: 7, SkuCode: "TS-001"}
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.skuRepo.EXPECT().FindByID(ctx, int64(7)).Return(sku, nil).Once()
	fx.labels.EXPECT().GenerateSkuLabel(sku).Return(png, nil).Once()

	label, err := fx.service.GenerateLabel(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, png, label)
}

func TestSkuService_GenerateLabel_NotFound(t *testing.T) {
	fx := createTestSkuService(t)
	ctx := context.Background()

	fx.skuRepo.EXPECT().FindByID(ctx, int64(7)).Return(nil, repository.ErrSkuNotFound).Once()

	_, err := fx.service.GenerateLabel(ctx, 7)

	assert.True(t, errors.Is(err, domainerrors.ErrSkuNotFound))
	fx.labels.AssertNotCalled(t, "GenerateSkuLabel", mock.Anything)
}
