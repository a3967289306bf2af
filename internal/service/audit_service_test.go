package service

import (
	"context"
	"testing"
	"time"

	"child-wallet/internal/core/domain"
	"child-wallet/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuditService_Log_PersistsToRepo(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockAuditRepository(ctrl)
	svc := NewAuditService(mockRepo, newTestLogger())

	done := make(chan *domain.AuditLog, 1)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, log *domain.AuditLog) error {
			done <- log
			return nil
		},
	)

	actor, childID := "GALICE", uuid.NewString()
	svc.Log(context.Background(), &domain.AuditLog{
		ID:           uuid.New(),
		Actor:        &actor,
		ChildID:      &childID,
		Action:       domain.AuditActionInstitutionPay,
		ResourceType: "payment",
		IPAddress:    "127.0.0.1",
		CreatedAt:    time.Now(),
	})

	select {
	case got := <-done:
		assert.Equal(t, domain.AuditActionInstitutionPay, got.Action)
		assert.Equal(t, childID, *got.ChildID)
	case <-time.After(2 * time.Second):
		t.Fatal("audit log not persisted in time")
	}
}

func TestAuditService_Log_NilRepo(t *testing.T) {
	svc := NewAuditService(nil, newTestLogger())

	// Should not panic
	svc.Log(context.Background(), &domain.AuditLog{
		ID:           uuid.New(),
		Action:       domain.AuditActionLogin,
		ResourceType: "session",
		IPAddress:    "127.0.0.1",
		CreatedAt:    time.Now(),
	})

	time.Sleep(50 * time.Millisecond) // let goroutine run
}
