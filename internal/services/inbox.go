package services

import (
	"sort"
	"time"

	"github.com/youssefrramdan/care-insight-api/internal/database"
	"github.com/youssefrramdan/care-insight-api/internal/models"
)

// LastMessage is the most recent message exchanged within a conversation.
type LastMessage struct {
	Text      string    `json:"text,omitempty"`
	Image     string    `json:"image,omitempty"`
	SenderID  string    `json:"senderId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ConversationSummary is the per-counterparty inbox entry: the counterparty's
// profile fields plus the last message exchanged with them.
type ConversationSummary struct {
	UserID       string      `json:"id"`
	FullName     string      `json:"fullName"`
	PhoneNumber  string      `json:"phoneNumber"`
	Email        string      `json:"email"`
	ProfileImage string      `json:"profileImage"`
	LastMessage  LastMessage `json:"lastMessage"`
}

// conversationKey canonicalizes a participant pair by ordering the two ids,
// so A→B and B→A messages land in the same group.
func conversationKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "_" + b
}

// BuildConversationSummaries groups the given messages into conversations,
// picks each conversation's most recent message, projects the counterparty's
// profile from profiles, and orders the result by last-message recency
// descending. Messages not involving userID are ignored. A self-message forms
// its own single-party conversation.
func BuildConversationSummaries(userID string, messages []models.Message, profiles map[string]models.User) []ConversationSummary {
	latest := make(map[string]models.Message)
	for _, m := range messages {
		if m.SenderID != userID && m.ReceiverID != userID {
			continue
		}
		key := conversationKey(m.SenderID, m.ReceiverID)
		if cur, ok := latest[key]; !ok || m.CreatedAt.After(cur.CreatedAt) {
			latest[key] = m
		}
	}

	summaries := make([]ConversationSummary, 0, len(latest))
	for _, m := range latest {
		counterpartyID := m.SenderID
		if counterpartyID == userID {
			counterpartyID = m.ReceiverID
		}

		summary := ConversationSummary{
			UserID: counterpartyID,
			LastMessage: LastMessage{
				Text:      m.Text,
				Image:     m.Image,
				SenderID:  m.SenderID,
				CreatedAt: m.CreatedAt,
			},
		}
		if u, ok := profiles[counterpartyID]; ok {
			summary.FullName = u.FullName
			summary.PhoneNumber = u.PhoneNumber
			summary.Email = u.Email
			summary.ProfileImage = u.ProfileImage
		}
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].LastMessage.CreatedAt.After(summaries[j].LastMessage.CreatedAt)
	})

	return summaries
}

// GetConversationSummaries loads the user's messages and counterparty
// profiles and builds the inbox view.
func GetConversationSummaries(userID string) ([]ConversationSummary, error) {
	var messages []models.Message
	if err := database.DB.
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Find(&messages).Error; err != nil {
		return nil, err
	}

	ids := make(map[string]struct{})
	for _, m := range messages {
		ids[m.SenderID] = struct{}{}
		ids[m.ReceiverID] = struct{}{}
	}
	delete(ids, userID)

	profiles := make(map[string]models.User, len(ids))
	if len(ids) > 0 {
		idList := make([]string, 0, len(ids))
		for id := range ids {
			idList = append(idList, id)
		}

		var users []models.User
		if err := database.DB.
			Select("id", "full_name", "phone_number", "email", "profile_image").
			Where("id IN ?", idList).
			Find(&users).Error; err != nil {
			return nil, err
		}
		for _, u := range users {
			profiles[u.ID] = u
		}
	}

	return BuildConversationSummaries(userID, messages, profiles), nil
}
