package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	doctorRepo "medagenda/database/repository/doctor"
	"medagenda/utils"
)

// NotificationService sends FCM pushes to patients and doctors. Delivery is
// best effort: booking flows never fail because a push did.
type NotificationService interface {
	SendPush(ctx context.Context, userID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation. It resolves
// device tokens through the users collection.
type DefaultNotificationService struct {
	Users doctorRepo.DoctorRepository
}

func NewDefaultNotificationService(users doctorRepo.DoctorRepository) (*DefaultNotificationService, error) {
	if users == nil {
		return nil, fmt.Errorf("notification service initialization error: user repository is nil")
	}
	return &DefaultNotificationService{Users: users}, nil
}

// SendPush looks up the recipient's FCM token and sends a push.
func (s *DefaultNotificationService) SendPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	logger := utils.GetLogger()

	token, err := s.Users.GetFCMToken(ctx, userID)
	if err != nil {
		return fmt.Errorf("SendPush: could not resolve token for %s: %w", userID, err)
	}
	if token == "" {
		logger.Debug("SendPush: recipient has no FCM token", zap.String("userID", userID))
		return nil
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendPush: fcm send to %s failed: %w", userID, err)
	}
	return nil
}
