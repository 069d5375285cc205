//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/MustafaAKbulut55/fullstack-ai-chat/internal/api"
	"github.com/MustafaAKbulut55/fullstack-ai-chat/internal/model"
)

type DBRepo interface {
	GetOrCreateUser(ctx context.Context, nickname string) (*model.User, error)
	SaveMessage(ctx context.Context, userID int64, text, sentiment string) (*model.Message, error)
	GetRecentMessages(ctx context.Context, limit int32) (*model.MessagePreviewList, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type TranslateClient interface {
	Translate(ctx context.Context, text string) (string, error)
}

type SentimentClient interface {
	Classify(ctx context.Context, text string) (string, error)
}

type SentimentCache interface {
	GetSentiment(text string) (string, error)
	SetSentiment(text, label string) error
}

type Validator interface {
	ValidatePostMessage(req *api.PostMessageRequest) error
}
