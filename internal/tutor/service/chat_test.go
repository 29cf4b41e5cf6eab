package service

import (
	"context"
	"errors"
	"testing"

	"github.com/edunest/tutord/internal/tutor/domain"
	"github.com/stretchr/testify/require"
)

type stubAnswers struct {
	answer  string
	sources []domain.Source
	err     error
}

func (s *stubAnswers) GenerateAnswer(ctx context.Context, query, subject string) (string, []domain.Source, error) {
	return s.answer, s.sources, s.err
}

type stubVideos struct {
	videos []domain.Video
	err    error
}

func (s *stubVideos) FindVideos(ctx context.Context, query string, limit int) ([]domain.Video, error) {
	return s.videos, s.err
}

func TestChatAskRecordsHistory(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	users := &UserService{Store: st}
	history := &HistoryService{Store: st}

	user, err := users.Register(ctx, "alice", "password123")
	require.NoError(t, err)

	chat := &ChatService{
		History: history,
		Answers: &stubAnswers{
			answer:  "Photosynthesis converts light into chemical energy.",
			sources: []domain.Source{{Document: "biology.pdf", Page: 4}},
		},
		Videos: &stubVideos{
			videos: []domain.Video{{Title: "Photosynthesis", URL: "https://example.com/v"}},
		},
		VideoLimit: 3,
	}

	entry, err := chat.Ask(ctx, user, "what is photosynthesis?", "biology")
	require.NoError(t, err)
	require.NotZero(t, entry.ID)
	require.Equal(t, "Photosynthesis converts light into chemical energy.", entry.Answer)
	require.Len(t, entry.Sources, 1)
	require.Len(t, entry.Videos, 1)

	entries, err := history.List(ctx, user.ID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "what is photosynthesis?", entries[0].Question)
}

func TestChatAskValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	chat := &ChatService{
		History: &HistoryService{Store: st},
		Answers: &stubAnswers{answer: "a"},
	}

	_, err := chat.Ask(ctx, domain.User{ID: 1}, "  ", "math")
	require.ErrorIs(t, err, ErrMissingQuery)

	_, err = chat.Ask(ctx, domain.User{ID: 1}, "question", "")
	require.ErrorIs(t, err, ErrMissingSubject)
}

func TestChatAskFailsWhenAnswerEngineFails(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	engineErr := errors.New("engine unavailable")
	chat := &ChatService{
		History: &HistoryService{Store: st},
		Answers: &stubAnswers{err: engineErr},
	}

	_, err := chat.Ask(ctx, domain.User{ID: 1}, "question", "math")
	require.ErrorIs(t, err, engineErr)
}

func TestChatAskDegradesOnVideoFailure(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	users := &UserService{Store: st}
	user, err := users.Register(ctx, "bob", "password123")
	require.NoError(t, err)

	chat := &ChatService{
		History:    &HistoryService{Store: st},
		Answers:    &stubAnswers{answer: "the answer"},
		Videos:     &stubVideos{err: errors.New("video search down")},
		VideoLimit: 3,
	}

	entry, err := chat.Ask(ctx, user, "question", "math")
	require.NoError(t, err)
	require.Equal(t, "the answer", entry.Answer)
	require.NotNil(t, entry.Videos)
	require.Empty(t, entry.Videos)
}

func TestChatAskWithoutVideoFinder(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	users := &UserService{Store: st}
	user, err := users.Register(ctx, "carol", "password123")
	require.NoError(t, err)

	chat := &ChatService{
		History: &HistoryService{Store: st},
		Answers: &stubAnswers{answer: "the answer"},
	}

	entry, err := chat.Ask(ctx, user, "question", "math")
	require.NoError(t, err)
	require.NotNil(t, entry.Videos)
	require.Empty(t, entry.Videos)
}

func TestChatAskSurvivesHistoryFailure(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	// Closing the store makes the history append fail while the in-flight
	// answer is already computed.
	chat := &ChatService{
		History: &HistoryService{Store: st},
		Answers: &stubAnswers{answer: "the answer"},
	}
	require.NoError(t, st.Close())

	entry, err := chat.Ask(ctx, domain.User{ID: 1}, "question", "math")
	require.NoError(t, err)
	require.Equal(t, "the answer", entry.Answer)
	require.Zero(t, entry.ID)
}
