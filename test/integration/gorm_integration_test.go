package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/repository/specification"
	"ai-stylist-be/internal/repository/unitofwork"
	"ai-stylist-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ProfileRepository())
	assert.NotNil(t, uow.RecommendationRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Profile Upsert Round Trip", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:            uuid.New(),
			Email:         "test-integration-" + uuid.New().String() + "@example.com",
			EmailVerified: true,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}
		require.NoError(t, uow.UserRepository().Create(ctx, user))

		profile := &entity.Profile{
			Id:               user.Id,
			Email:            user.Email,
			FullName:         "Integration Test User",
			Gender:           entity.GenderFemale,
			SkinTone:         "Medium",
			TopSize:          "M",
			BottomSize:       "S",
			Style:            "Casual",
			ProfileCompleted: true,
		}
		require.NoError(t, uow.ProfileRepository().Upsert(ctx, profile))

		// Saving twice with the same id must not fail or duplicate.
		profile.Bio = "updated bio"
		require.NoError(t, uow.ProfileRepository().Upsert(ctx, profile))

		loaded, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: user.Id})
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, profile.FullName, loaded.FullName)
		assert.Equal(t, profile.Gender, loaded.Gender)
		assert.Equal(t, profile.TopSize, loaded.TopSize)
		assert.Equal(t, profile.BottomSize, loaded.BottomSize)
		assert.Equal(t, "updated bio", loaded.Bio)
		assert.True(t, loaded.ProfileCompleted)
	})

	t.Run("Recommendation Append And List", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:            uuid.New(),
			Email:         "test-integration-" + uuid.New().String() + "@example.com",
			EmailVerified: true,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}
		require.NoError(t, uow.UserRepository().Create(ctx, user))

		rec := &entity.Recommendation{
			Id:                 uuid.New(),
			UserId:             user.Id,
			RecommendationText: "Try a linen shirt with chinos.",
			CreatedAt:          time.Now(),
		}
		require.NoError(t, uow.RecommendationRepository().Create(ctx, rec))

		recs, err := uow.RecommendationRepository().FindAll(ctx,
			specification.OwnedBy{UserID: user.Id},
			specification.NewestFirst{},
		)
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, rec.RecommendationText, recs[0].RecommendationText)
	})
}
