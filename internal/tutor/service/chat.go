package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/edunest/tutord/internal/tutor/domain"
	"github.com/edunest/tutord/pkg/slogx"
)

// AnswerGenerator is the external retrieval-augmented answer engine.
type AnswerGenerator interface {
	GenerateAnswer(ctx context.Context, query, subject string) (string, []domain.Source, error)
}

// VideoFinder is the external video suggestion lookup.
type VideoFinder interface {
	FindVideos(ctx context.Context, query string, limit int) ([]domain.Video, error)
}

// ChatService orchestrates one chat turn: generate an answer, attach video
// suggestions, and record the interaction in the user's history. Only the
// answer engine is load-bearing; video lookup and the history append are
// best-effort and never fail the response.
type ChatService struct {
	History *HistoryService
	Answers AnswerGenerator

	// Videos may be nil, which disables suggestions entirely.
	Videos     VideoFinder
	VideoLimit int
}

// Ask answers a question for a user. An answer-engine failure fails the whole
// call; everything downstream of the answer degrades instead.
func (s *ChatService) Ask(ctx context.Context, user domain.User, query, subject string) (domain.ChatEntry, error) {
	log := slogx.FromContext(ctx)

	query = strings.TrimSpace(query)
	subject = strings.TrimSpace(subject)
	if query == "" {
		return domain.ChatEntry{}, ErrMissingQuery
	}
	if subject == "" {
		return domain.ChatEntry{}, ErrMissingSubject
	}

	answer, sources, err := s.Answers.GenerateAnswer(ctx, query, subject)
	if err != nil {
		return domain.ChatEntry{}, fmt.Errorf("generate answer: %w", err)
	}
	if sources == nil {
		sources = []domain.Source{}
	}

	videos := []domain.Video{}
	if s.Videos != nil {
		found, err := s.Videos.FindVideos(ctx, query, s.VideoLimit)
		if err != nil {
			log.Warn("video suggestion lookup failed", "err", err)
		} else if found != nil {
			videos = found
		}
	}

	entry := domain.ChatEntry{
		UserID:   user.ID,
		Subject:  subject,
		Question: query,
		Answer:   answer,
		Sources:  sources,
		Videos:   videos,
	}

	// History is auxiliary; a write failure must not fail the chat response.
	id, err := s.History.Append(ctx, entry)
	if err != nil {
		log.Warn("could not save chat history", "user_id", user.ID, "err", err)
	} else {
		entry.ID = id
	}

	return entry, nil
}
