package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamly/internal/models/db_models"
	"roamly/pkg/utils"
)

func TestGetStats(t *testing.T) {
	svc := NewAdminService(newFakeUserRepo(), &fakeStatsRepo{
		users: 12, trips: 30, publicTrips: 5, cities: 8, activities: 21,
	})

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.Users)
	assert.Equal(t, int64(30), stats.Trips)
	assert.Equal(t, int64(5), stats.PublicTrips)
	assert.Equal(t, int64(8), stats.Cities)
	assert.Equal(t, int64(21), stats.Activities)
}

func TestDeleteUser_SelfDeletionRejectedBeforeStore(t *testing.T) {
	userRepo := newFakeUserRepo()
	adminID := userRepo.add(db_models.User{Name: "Root", Email: "root@example.com", Role: db_models.RoleAdmin})
	svc := NewAdminService(userRepo, &fakeStatsRepo{})

	err := svc.DeleteUser(context.Background(), adminID, adminID)
	assert.ErrorIs(t, err, utils.ErrSelfDeletion)
	assert.Empty(t, userRepo.deleted)
}

func TestDeleteUser_Unknown(t *testing.T) {
	userRepo := newFakeUserRepo()
	adminID := userRepo.add(db_models.User{Name: "Root", Email: "root@example.com", Role: db_models.RoleAdmin})
	svc := NewAdminService(userRepo, &fakeStatsRepo{})

	err := svc.DeleteUser(context.Background(), adminID, uuid.New())
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestDeleteUser_RemovesTarget(t *testing.T) {
	userRepo := newFakeUserRepo()
	adminID := userRepo.add(db_models.User{Name: "Root", Email: "root@example.com", Role: db_models.RoleAdmin})
	targetID := userRepo.add(db_models.User{Name: "Ada", Email: "ada@example.com", Role: db_models.RoleUser})
	svc := NewAdminService(userRepo, &fakeStatsRepo{})

	require.NoError(t, svc.DeleteUser(context.Background(), adminID, targetID))
	assert.Equal(t, []uuid.UUID{targetID}, userRepo.deleted)
}
