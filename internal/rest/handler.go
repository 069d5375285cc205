package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/MustafaAKbulut55/fullstack-ai-chat/internal/api"
	"github.com/MustafaAKbulut55/fullstack-ai-chat/internal/config"
	"github.com/MustafaAKbulut55/fullstack-ai-chat/internal/model"
	"github.com/MustafaAKbulut55/fullstack-ai-chat/internal/pkg/tx"
)

const (
	defaultMessagesLimit = int32(50)
	maxMessagesLimit     = int32(200)
)

type Handler struct {
	repository      DBRepo
	translateClient TranslateClient
	sentimentClient SentimentClient
	sentimentCache  SentimentCache
	validator       Validator
}

func New(
	repo DBRepo,
	translateClient TranslateClient,
	sentimentClient SentimentClient,
	sentimentCache SentimentCache,
	validator Validator,
) *Handler {
	return &Handler{
		repository:      repo,
		translateClient: translateClient,
		sentimentClient: sentimentClient,
		sentimentCache:  sentimentCache,
		validator:       validator,
	}
}

func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("PostMessage")

	var req api.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidatePostMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	sentiment := h.classifyText(r.Context(), logger, req.Text)

	var message *model.Message
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		user, err := h.repository.GetOrCreateUser(ctx, strings.TrimSpace(req.Nickname))
		if err != nil {
			logger.Error(fmt.Sprintf("failed to resolve user: %v", err))
			return fmt.Errorf("failed to resolve user: %v", err)
		}

		message, err = h.repository.SaveMessage(ctx, user.ID, req.Text, sentiment)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to save message: %v", err))
			return fmt.Errorf("failed to save message: %v", err)
		}

		return nil
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to complete post message transaction: %v", err))
		h.writeError(w, fmt.Sprintf("failed to post message: %v", err), http.StatusInternalServerError)
		return
	}

	h.increment(r.Context(), "messages.post.ok")

	response := api.PostMessageResponse{
		Id:        message.ID,
		UserId:    message.UserID,
		Text:      message.Text,
		Sentiment: message.Sentiment,
		CreatedAt: message.CreatedAt.Format(time.RFC3339),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMessages")

	limit := defaultMessagesLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed < 0 {
			logger.Error(fmt.Sprintf("invalid limit parameter: %q", raw))
			h.writeError(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}

		limit = int32(parsed)
		if limit > maxMessagesLimit {
			limit = maxMessagesLimit
		}
	}

	messages, err := h.repository.GetRecentMessages(r.Context(), limit)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeError(w, fmt.Sprintf("failed to fetch messages: %v", err), http.StatusInternalServerError)
		return
	}

	apiMessages := make([]api.Message, len(*messages))
	for i, msg := range *messages {
		apiMessages[i] = api.Message{
			Id:        msg.ID,
			Text:      msg.Text,
			Sentiment: msg.Sentiment,
			Nickname:  msg.Nickname,
			CreatedAt: msg.CreatedAt.Format(time.RFC3339),
		}
	}

	response := api.GetMessagesResponse{
		Messages: apiMessages,
	}

	h.writeJSON(w, response, http.StatusOK)
}

// classifyText runs the translate-then-classify pipeline. Any upstream failure
// degrades the label, never the request: translation errors fall back to the
// original text, classification errors to the Unknown sentinel.
func (h *Handler) classifyText(ctx context.Context, logger logger_lib.LoggerInterface, text string) string {
	translated, err := h.translateClient.Translate(ctx, text)
	if err != nil {
		logger.Warn(fmt.Sprintf("failed to translate text, using original: %v", err))
		translated = text
	}

	if label, err := h.sentimentCache.GetSentiment(translated); err == nil {
		h.increment(ctx, "sentiment.cache.hit")
		return label
	}
	h.increment(ctx, "sentiment.cache.miss")

	label, err := h.sentimentClient.Classify(ctx, translated)
	if err != nil {
		logger.Warn(fmt.Sprintf("failed to classify text: %v", err))
		return model.SentimentUnknown
	}

	if err := h.sentimentCache.SetSentiment(translated, label); err != nil {
		logger.Warn(fmt.Sprintf("failed to cache sentiment label: %v", err))
	}

	return label
}

func (h *Handler) increment(ctx context.Context, metric string) {
	if metrics, ok := ctx.Value(config.KeyMetrics).(*pkg.Metrics); ok {
		metrics.Increment(metric)
	}
}

// ----------------------------- helpers -----------------------------

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
