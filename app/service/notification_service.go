package service

import (
	"context"

	"pkl-management-backend/app/model"
	"pkl-management-backend/app/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationService interface {
	Create(ctx context.Context, n *model.Notification) (string, error)
	// List memfilter per user (opsional); unreadOnly membatasi ke is_read = false.
	List(ctx context.Context, userID string, unreadOnly bool) ([]model.Notification, error)
}

type notificationService struct {
	store repository.DocumentStore
}

func NewNotificationService(store repository.DocumentStore) NotificationService {
	return &notificationService{store: store}
}

func (s *notificationService) Create(ctx context.Context, n *model.Notification) (string, error) {
	n.ID = primitive.NilObjectID
	return createRecord(ctx, s.store, model.KindNotification, n)
}

func (s *notificationService) List(ctx context.Context, userID string, unreadOnly bool) ([]model.Notification, error) {
	filter := repository.Filter{}
	if userID != "" {
		filter["user_id"] = userID
	}
	if unreadOnly {
		filter["is_read"] = false
	}
	return listRecords[model.Notification](ctx, s.store, model.KindNotification, filter)
}
