package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"truefind/internal/domain/entity"
	"truefind/internal/domain/repository"
	mockRepo "truefind/internal/mocks/repository"
	"truefind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// collectionServiceFixtures holds all test dependencies for collection service tests.
type collectionServiceFixtures struct {
	service        usecase.CollectionUsecase
	txManager      *mockRepo.MockTransactionManager
	collectionRepo *mockRepo.MockCollectionRepository
}

func createTestCollectionService(t *testing.T) collectionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	collectionRepo := mockRepo.NewMockCollectionRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCollectionService(CollectionServiceParams{
		TxManager:      txManager,
		CollectionRepo: collectionRepo,
		Logger:         logger,
	})

	return collectionServiceFixtures{
		service:        svc,
		txManager:      txManager,
		collectionRepo: collectionRepo,
	}
}

func TestCollectionService_List_ReturnsEntriesWithProducts(t *testing.T) {
	f := createTestCollectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	entries := []*entity.CollectionEntry{
		{
			ID:     uuid.New(),
			UserID: userID,
			Kind:   entity.CollectionVerified,
			Product: &entity.Product{
				ID:   uuid.New(),
				Name: "Air Jordan 1",
			},
		},
	}

	f.collectionRepo.EXPECT().
		ListByUser(ctx, userID, entity.CollectionVerified).
		Return(entries, nil)

	got, err := f.service.List(ctx, userID, entity.CollectionVerified)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Air Jordan 1", got[0].Product.Name)
}

func TestCollectionService_List_Empty(t *testing.T) {
	f := createTestCollectionService(t)

	ctx := context.Background()
	userID := uuid.New()

	f.collectionRepo.EXPECT().
		ListByUser(ctx, userID, entity.CollectionWatchlist).
		Return([]*entity.CollectionEntry{}, nil)

	got, err := f.service.List(ctx, userID, entity.CollectionWatchlist)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCollectionService_List_RepositoryError(t *testing.T) {
	f := createTestCollectionService(t)

	ctx := context.Background()
	userID := uuid.New()

	f.collectionRepo.EXPECT().
		ListByUser(ctx, userID, entity.CollectionVerified).
		Return(nil, errors.New("connection reset"))

	got, err := f.service.List(ctx, userID, entity.CollectionVerified)

	assert.Nil(t, got)
	assert.Error(t, err)
}

func TestCollectionService_Add_CreatesProductAndLink(t *testing.T) {
	f := createTestCollectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	input := &usecase.AddProductInput{
		Name:               "Air Jordan 1",
		Platform:           "StockX",
		Price:              "250.00",
		VerificationStatus: "verified",
		ImageURL:           "https://example.com/aj1.png",
	}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockCollectionRepo := mockRepo.NewMockCollectionRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().CollectionRepo().Return(mockCollectionRepo)

			mockProductRepo.EXPECT().
				GetOrCreate(ctx, mock.AnythingOfType("*entity.Product")).
				Run(func(ctx context.Context, product *entity.Product) {
					assert.Equal(t, input.Name, product.Name)
					assert.Equal(t, input.Platform, product.Platform)
				}).
				Return(&entity.Product{ID: productID, Name: input.Name}, nil)

			mockCollectionRepo.EXPECT().
				GetOrCreateLink(ctx, userID, productID, entity.CollectionVerified).
				Return(&entity.CollectionEntry{
					ID:        uuid.New(),
					UserID:    userID,
					ProductID: productID,
					Kind:      entity.CollectionVerified,
				}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := f.service.Add(ctx, userID, entity.CollectionVerified, input)

	require.NoError(t, err)
}

func TestCollectionService_Add_ReusesExistingProduct(t *testing.T) {
	f := createTestCollectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingProductID := uuid.New()
	input := &usecase.AddProductInput{
		Name:               "Air Jordan 1",
		Platform:           "StockX",
		Price:              "250.00",
		VerificationStatus: "verified",
		ImageURL:           "https://example.com/aj1.png",
	}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockCollectionRepo := mockRepo.NewMockCollectionRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().CollectionRepo().Return(mockCollectionRepo)

			mockProductRepo.EXPECT().
				GetOrCreate(ctx, mock.AnythingOfType("*entity.Product")).
				Return(&entity.Product{ID: existingProductID, Name: input.Name}, nil)

			// A second add of the same payload links against the existing
			// product on the watchlist without touching verified entries.
			mockCollectionRepo.EXPECT().
				GetOrCreateLink(ctx, userID, existingProductID, entity.CollectionWatchlist).
				Return(&entity.CollectionEntry{
					ID:        uuid.New(),
					UserID:    userID,
					ProductID: existingProductID,
					Kind:      entity.CollectionWatchlist,
				}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := f.service.Add(ctx, userID, entity.CollectionWatchlist, input)

	require.NoError(t, err)
}

func TestCollectionService_Add_TransactionFailure(t *testing.T) {
	f := createTestCollectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.AddProductInput{
		Name:               "Air Jordan 1",
		Platform:           "StockX",
		Price:              "250.00",
		VerificationStatus: "verified",
		ImageURL:           "https://example.com/aj1.png",
	}

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("deadlock detected"))

	err := f.service.Add(ctx, userID, entity.CollectionVerified, input)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add product to verified")
}
