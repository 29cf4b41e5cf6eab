package http_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/edunest/tutord/internal/tutor/domain"
	httpapi "github.com/edunest/tutord/internal/tutor/http"
	"github.com/edunest/tutord/internal/tutor/service"
	"github.com/edunest/tutord/internal/tutor/store"
	"github.com/edunest/tutord/internal/tutor/store/drivers/sqlite"
	"github.com/edunest/tutord/pkg/cryptox"
	"github.com/edunest/tutord/pkg/tutorsdk"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "tutor-http-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type fixedAnswers struct {
	answer  string
	sources []domain.Source
	err     error
}

func (f *fixedAnswers) GenerateAnswer(ctx context.Context, query, subject string) (string, []domain.Source, error) {
	return f.answer, f.sources, f.err
}

// newTestServer wires a full router over an in-memory store with a stubbed
// answer engine, the same shape as production wiring minus the network hops.
func newTestServer(t *testing.T, answers service.AnswerGenerator) (*httptest.Server, store.Store) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	historyService := &service.HistoryService{Store: st}

	router := httpapi.NewRouter(
		"test",
		"*",
		st,
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})),
	)
	router.UserService = &service.UserService{Store: st}
	router.SessionService = &service.SessionService{Store: st}
	router.HistoryService = historyService
	router.SubjectsService = &service.SubjectsService{Dir: t.TempDir()}
	router.ChatService = &service.ChatService{
		History: historyService,
		Answers: answers,
	}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, st
}

func TestFullAuthAndChatFlow(t *testing.T) {
	ctx := context.Background()
	srv, _ := newTestServer(t, &fixedAnswers{
		answer:  "Mitochondria produce ATP.",
		sources: []domain.Source{{Document: "biology.pdf", Page: 7, Snippet: "the mitochondrion"}},
	})

	client := tutorsdk.NewClient(srv.URL)

	// Register returns a logged-in session.
	auth, session, err := client.Register(ctx, "alice", "s3cret-password")
	require.NoError(t, err)
	require.NotNil(t, session)
	require.NotEmpty(t, auth.Token)
	require.Equal(t, "alice", auth.User.Username)
	require.Equal(t, "alice", auth.User.DisplayName)

	// Wrong password is rejected with 401.
	_, _, err = client.Login(ctx, "alice", "wrong-password")
	var apiErr *tutorsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	// A correct login issues a fresh token, invalidating the registration one.
	loginAuth, session, err := client.Login(ctx, "alice", "s3cret-password")
	require.NoError(t, err)
	require.NotEqual(t, auth.Token, loginAuth.Token)

	stale := client.SessionFromToken(auth.Token)
	_, err = stale.History(ctx)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	// History starts empty.
	history, err := session.History(ctx)
	require.NoError(t, err)
	require.Empty(t, history.History)

	// A chat turn answers and records.
	chat, err := session.Chat(ctx, "what do mitochondria do?", "biology")
	require.NoError(t, err)
	require.Equal(t, "Mitochondria produce ATP.", chat.Answer)
	require.Len(t, chat.Sources, 1)
	require.Equal(t, "biology", chat.Subject)
	require.NotNil(t, chat.Videos)

	history, err = session.History(ctx)
	require.NoError(t, err)
	require.Len(t, history.History, 1)
	require.Equal(t, "what do mitochondria do?", history.History[0].Question)
	require.Equal(t, "Mitochondria produce ATP.", history.History[0].Answer)

	// Logout invalidates the token; a repeat logout still succeeds.
	msg, err := session.Logout(ctx)
	require.NoError(t, err)
	require.Equal(t, "logged out", msg.Message)

	_, err = session.History(ctx)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	_, err = session.Logout(ctx)
	require.NoError(t, err)
}

func TestRegisterRejectsDuplicateAndMissingFields(t *testing.T) {
	ctx := context.Background()
	srv, _ := newTestServer(t, &fixedAnswers{answer: "a"})
	client := tutorsdk.NewClient(srv.URL)

	_, _, err := client.Register(ctx, "bob", "password123")
	require.NoError(t, err)

	var apiErr *tutorsdk.APIError

	_, _, err = client.Register(ctx, "bob", "other-password")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)

	_, _, err = client.Register(ctx, "", "password123")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestChatValidationAndEngineFailure(t *testing.T) {
	ctx := context.Background()
	engine := &fixedAnswers{answer: "fine"}
	srv, _ := newTestServer(t, engine)
	client := tutorsdk.NewClient(srv.URL)

	_, session, err := client.Register(ctx, "carol", "password123")
	require.NoError(t, err)

	var apiErr *tutorsdk.APIError

	_, err = session.Chat(ctx, "", "math")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)

	_, err = session.Chat(ctx, "question", "")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)

	engine.err = errors.New("engine down")
	_, err = session.Chat(ctx, "question", "math")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	ctx := context.Background()
	srv, _ := newTestServer(t, &fixedAnswers{answer: "a"})
	client := tutorsdk.NewClient(srv.URL)

	var apiErr *tutorsdk.APIError

	bogus := client.SessionFromToken("not-a-real-token")
	_, err := bogus.Chat(ctx, "question", "math")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	_, err = bogus.Subjects(ctx)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	ctx := context.Background()
	srv, _ := newTestServer(t, &fixedAnswers{answer: "a"})
	client := tutorsdk.NewClient(srv.URL)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "test", health.Version)
}
