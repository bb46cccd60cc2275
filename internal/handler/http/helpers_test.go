package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/service"
	"github.com/MKhiriev/go-diary-keeper/internal/store"
	"github.com/MKhiriev/go-diary-keeper/models"
)

const validToken = "stub-token"

// ---- Stub: AuthService ----

type stubAuthSvc struct{}

func (stubAuthSvc) CreateToken(_ context.Context, userID int64) (models.Token, error) {
	return models.Token{SignedString: validToken, UserID: userID}, nil
}

func (stubAuthSvc) ParseToken(_ context.Context, token string) (models.Token, error) {
	if token != validToken {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{SignedString: token, UserID: 7}, nil
}

// ---- Stub: AppInfoService ----

type stubAppInfoSvc struct{}

func (stubAppInfoSvc) GetAppVersion(context.Context) string { return "test-version" }

// ---- Stub: DiaryService ----

type savedDiary struct {
	userID int64
	req    models.SaveDiaryRequest
}

type stubDiarySvc struct {
	diaries map[string]models.Diary
	saved   []savedDiary
	err     error
}

func (s *stubDiarySvc) GetDiary(_ context.Context, _ int64, date string) (models.Diary, error) {
	if s.err != nil {
		return models.Diary{}, s.err
	}
	d, ok := s.diaries[date]
	if !ok {
		return models.Diary{}, store.ErrDiaryNotFound
	}
	return d, nil
}

func (s *stubDiarySvc) SaveDiary(_ context.Context, userID int64, req models.SaveDiaryRequest) (models.SaveDiaryResponse, error) {
	if s.err != nil {
		return models.SaveDiaryResponse{}, s.err
	}
	s.saved = append(s.saved, savedDiary{userID: userID, req: req})
	return models.SaveDiaryResponse{Success: true, Updated: "2024-01-15T10:00:00Z"}, nil
}

// ---- Helpers ----

func newTestHandler(diaries *stubDiarySvc) *Handler {
	return NewHandler(&service.Services{
		AuthService:    stubAuthSvc{},
		AppInfoService: stubAppInfoSvc{},
		DiaryService:   diaries,
	}, logger.Nop())
}

func serve(t *testing.T, h http.Handler, method, path, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if authed {
		req.Header.Set("Authorization", "Bearer "+validToken)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
