package ws

import (
	"github.com/Vansh-Pandey/SocialMedia/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HubNotifier implements service.Notifier on top of the WebSocket Hub.
type HubNotifier struct {
	hub    *Hub
	logger *zap.Logger
}

func NewHubNotifier(hub *Hub, logger *zap.Logger) *HubNotifier {
	return &HubNotifier{hub: hub, logger: logger}
}

// NotifyNewMessage pushes a direct message to its receiver.
func (n *HubNotifier) NotifyNewMessage(msg *domain.Message) {
	evt, err := NewEvent(EventTypeMessageNew, MessagePayload{Message: *msg})
	if err != nil {
		n.logger.Error("ws notifier marshal", zap.Error(err))
		return
	}
	n.hub.SendToUser(msg.ReceiverID, evt)
}

// NotifyNewPost announces a new post to everyone but its author.
func (n *HubNotifier) NotifyNewPost(post *domain.Post) {
	evt, err := NewEvent(EventTypePostNew, PostPayload{Post: *post})
	if err != nil {
		n.logger.Error("ws notifier marshal", zap.Error(err))
		return
	}
	n.hub.Broadcast(evt, &post.UserID)
}

func (n *HubNotifier) NotifyPostLiked(post *domain.Post, likerID uuid.UUID) {
	evt, err := NewEvent(EventTypePostLiked, PostLikedPayload{Post: *post, LikerID: likerID})
	if err != nil {
		n.logger.Error("ws notifier marshal", zap.Error(err))
		return
	}
	n.hub.Broadcast(evt, &likerID)
}

func (n *HubNotifier) NotifyNewComment(post *domain.Post, commenterID uuid.UUID) {
	evt, err := NewEvent(EventTypeCommentNew, PostPayload{Post: *post})
	if err != nil {
		n.logger.Error("ws notifier marshal", zap.Error(err))
		return
	}
	n.hub.Broadcast(evt, &commenterID)
}
