package services

import (
	"context"
	"errors"
	"fmt"

	"qr-menu-api/mail"
	"qr-menu-api/models"
	"qr-menu-api/statemachine"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

// LifecycleService applies restaurant status transitions. It is shared by the
// admin endpoint and the CMS webhook so both surfaces get identical semantics,
// in particular the read-before-write idempotency of the activation email.
type LifecycleService struct {
	db     *gorm.DB
	mailer mail.Sender
	logger *zap.SugaredLogger
}

func NewLifecycleService(db *gorm.DB, mailer mail.Sender, logger *zap.SugaredLogger) *LifecycleService {
	return &LifecycleService{db: db, mailer: mailer, logger: logger}
}

// ChangeStatus moves a restaurant to newStatus on behalf of actor.
//
// The previous status is always what our own store says, never what a caller
// claims. A request targeting the current status is a no-op, which makes
// duplicate webhook deliveries harmless: the second delivery observes
// previous=active and sends nothing.
func (s *LifecycleService) ChangeStatus(ctx context.Context, restaurantID uint, newStatus models.Status, actor string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.WithContext(ctx).First(&restaurant, restaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	prev := restaurant.Status
	if prev == newStatus {
		return &restaurant, nil
	}

	if err := statemachine.CanTransition(prev, newStatus, actor); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}

	updates := map[string]interface{}{"status": newStatus}
	if newStatus == models.StatusActive {
		updates["pending_reason"] = ""
	}
	if err := s.db.WithContext(ctx).Model(&restaurant).Updates(updates).Error; err != nil {
		return nil, err
	}

	// Owner login is gated on the same status: activating the restaurant
	// unlocks sign-in, disabling it blocks sign-in.
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", restaurant.OwnerID).
		Update("status", newStatus).Error; err != nil {
		s.logger.Errorw("failed to sync owner account status", "user_id", restaurant.OwnerID, "error", err)
	}

	s.logger.Infow("restaurant status changed",
		"restaurant_id", restaurant.ID, "from", prev, "to", newStatus, "actor", actor)

	if prev == models.StatusPending && newStatus == models.StatusActive {
		s.sendActivationEmail(ctx, &restaurant)
	}

	return &restaurant, nil
}

func (s *LifecycleService) sendActivationEmail(ctx context.Context, restaurant *models.Restaurant) {
	var owner models.User
	if err := s.db.WithContext(ctx).First(&owner, restaurant.OwnerID).Error; err != nil {
		s.logger.Errorw("activation email skipped, owner not found", "restaurant_id", restaurant.ID, "error", err)
		return
	}

	msg := mail.Message{
		To:      owner.Email,
		Subject: "Your restaurant is live",
		Body: fmt.Sprintf("Hi %s, your restaurant %q has been approved and its menu is now publicly visible.",
			owner.Name, restaurant.Name),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Errorw("failed to send activation email", "user_id", owner.ID, "error", err)
	}
}
