// Package rag adapts the collaborator SDK clients onto the service-layer
// AnswerGenerator and VideoFinder interfaces, mapping wire types to domain
// types.
package rag

import (
	"context"

	"github.com/edunest/tutord/internal/tutor/domain"
	"github.com/edunest/tutord/pkg/ragsdk"
	"github.com/edunest/tutord/pkg/videosdk"
)

// AnswerEngine wraps a ragsdk client as a service.AnswerGenerator.
type AnswerEngine struct {
	Client *ragsdk.Client
}

func (e *AnswerEngine) GenerateAnswer(ctx context.Context, query, subject string) (string, []domain.Source, error) {
	answer, err := e.Client.GenerateAnswer(ctx, query, subject)
	if err != nil {
		return "", nil, err
	}

	sources := make([]domain.Source, 0, len(answer.Sources))
	for _, s := range answer.Sources {
		sources = append(sources, domain.Source{
			Document: s.Document,
			Page:     s.Page,
			Snippet:  s.Snippet,
		})
	}

	return answer.Answer, sources, nil
}

// VideoSearch wraps a videosdk client as a service.VideoFinder.
type VideoSearch struct {
	Client *videosdk.Client
}

func (v *VideoSearch) FindVideos(ctx context.Context, query string, limit int) ([]domain.Video, error) {
	found, err := v.Client.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	videos := make([]domain.Video, 0, len(found))
	for _, f := range found {
		videos = append(videos, domain.Video{
			Title:   f.Title,
			URL:     f.URL,
			Channel: f.Channel,
		})
	}

	return videos, nil
}
