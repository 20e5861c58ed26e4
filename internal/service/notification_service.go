package service

import (
	"context"
	"encoding/json"
	"fmt"
	"mindscreen_backend/internal/model"
	"mindscreen_backend/internal/repository"
	"mindscreen_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type NotificationService struct {
	Repo    *repository.NotificationRepository
	Users   *repository.UserRepository
	Redis   *redis.Client
	Channel string
}

func NewNotificationService(repo *repository.NotificationRepository, users *repository.UserRepository, rdb *redis.Client, channel string) *NotificationService {
	return &NotificationService{Repo: repo, Users: users, Redis: rdb, Channel: channel}
}

// highRiskEvent is the payload published on the alert channel for live
// subscribers (dashboards, on-call bridges).
type highRiskEvent struct {
	Kind            string   `json:"kind"`
	OrganizationID  uint     `json:"organizationId"`
	QuestionnaireID uint     `json:"questionnaireId"`
	ResponseID      uint     `json:"responseId"`
	Score           *float64 `json:"score"`
	Title           string   `json:"title"`
}

// NotifyHighRisk fans a high-risk screening result out to every admin and
// clinician of the owning organization, and publishes an event for live
// subscribers. A partial fan-out returns the first error; rows already
// written stay written.
func (s *NotificationService) NotifyHighRisk(resp *model.Response, q *model.Questionnaire) error {
	staff, err := s.Users.ListStaff(q.OrganizationID)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("High-risk result on %q (response #%d)", q.Title, resp.ID)
	for _, u := range staff {
		n := &model.Notification{
			OrganizationID:  q.OrganizationID,
			UserID:          u.ID,
			QuestionnaireID: q.ID,
			ResponseID:      resp.ID,
			Kind:            model.NotificationHighRisk,
			Message:         message,
		}
		if err := s.Repo.Create(n); err != nil {
			return err
		}
	}

	s.publish(resp, q)
	return nil
}

func (s *NotificationService) publish(resp *model.Response, q *model.Questionnaire) {
	if s.Redis == nil {
		return
	}
	payload, err := json.Marshal(highRiskEvent{
		Kind:            model.NotificationHighRisk,
		OrganizationID:  q.OrganizationID,
		QuestionnaireID: q.ID,
		ResponseID:      resp.ID,
		Score:           resp.Score,
		Title:           q.Title,
	})
	if err != nil {
		return
	}
	if err := s.Redis.Publish(context.Background(), s.Channel, payload).Err(); err != nil {
		logger.Log.Warn("alert channel publish failed",
			zap.String("channel", s.Channel), zap.Error(err))
	}
}

func (s *NotificationService) ListForUser(userID uint, page, limit int) ([]model.Notification, int64, error) {
	return s.Repo.ListByUser(userID, page, limit)
}

func (s *NotificationService) MarkRead(id string, userID uint) error {
	return s.Repo.MarkRead(id, userID)
}

func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	return s.Repo.CountUnread(userID)
}
