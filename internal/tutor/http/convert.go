package http

import (
	"github.com/edunest/tutord/internal/tutor/domain"
	"github.com/edunest/tutord/pkg/tutorsdk"
)

func toUserInfo(u domain.User) *tutorsdk.UserInfo {
	return &tutorsdk.UserInfo{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

func toSources(in []domain.Source) []tutorsdk.Source {
	out := make([]tutorsdk.Source, 0, len(in))
	for _, s := range in {
		out = append(out, tutorsdk.Source{
			Document: s.Document,
			Page:     s.Page,
			Snippet:  s.Snippet,
		})
	}
	return out
}

func toVideos(in []domain.Video) []tutorsdk.Video {
	out := make([]tutorsdk.Video, 0, len(in))
	for _, v := range in {
		out = append(out, tutorsdk.Video{
			Title:   v.Title,
			URL:     v.URL,
			Channel: v.Channel,
		})
	}
	return out
}

func toHistoryEntries(in []domain.ChatEntry) []tutorsdk.HistoryEntry {
	out := make([]tutorsdk.HistoryEntry, 0, len(in))
	for _, e := range in {
		out = append(out, tutorsdk.HistoryEntry{
			ID:        e.ID,
			Subject:   e.Subject,
			Question:  e.Question,
			Answer:    e.Answer,
			Sources:   toSources(e.Sources),
			Videos:    toVideos(e.Videos),
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}
