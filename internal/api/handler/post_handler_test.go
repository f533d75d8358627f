package handler_test

import (
	"Snapfeed/internal/api"
	"Snapfeed/internal/api/config"
	"Snapfeed/internal/api/dto"
	"Snapfeed/internal/api/handler"
	"Snapfeed/internal/pkg/security"
	"Snapfeed/internal/service"
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type fakePostService struct {
	created   *dto.PostDTO
	createErr error
	feed      []*dto.PostDTO
	deleteErr error
}

func (f *fakePostService) CreatePost(_ context.Context, userID, caption string, reader io.ReadCloser, fileName, contentType string) (*dto.PostDTO, error) {
	defer reader.Close()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = &dto.PostDTO{
		ID:        "33333333-3333-3333-3333-333333333333",
		UserID:    userID,
		Caption:   caption,
		URL:       "https://cdn.test/" + fileName,
		FileType:  "image",
		FileName:  fileName,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	return f.created, nil
}

func (f *fakePostService) ListFeed(_ context.Context) ([]*dto.PostDTO, error) {
	return f.feed, nil
}

func (f *fakePostService) DeletePost(_ context.Context, _, _ string) error {
	return f.deleteErr
}

type fakeUserService struct{}

func (f *fakeUserService) Register(_ context.Context, regDTO *dto.RegisterDTO) (*dto.UserDTO, error) {
	return &dto.UserDTO{ID: "u-1", Email: regDTO.Email, IsActive: true}, nil
}

func (f *fakeUserService) Login(_ context.Context, _ *dto.CredentialDTO) (string, error) {
	return security.GenerateToken("u-1")
}

func (f *fakeUserService) Logout(_ context.Context, _ string) error { return nil }

func (f *fakeUserService) GetUserInfo(_ context.Context, id string) (*dto.UserDTO, error) {
	return &dto.UserDTO{ID: id, Email: "me@example.com", IsActive: true}, nil
}

type fakeBlacklist struct {
	revoked map[string]bool
}

func (f *fakeBlacklist) IsRevoked(_ context.Context, signature string) (bool, error) {
	return f.revoked[signature], nil
}

func newTestRouter(postSvc service.PostService, blacklist *fakeBlacklist) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.Cfg = &config.Config{}
	security.Init("test-secret", 1)

	group := &api.HandlersGroup{
		UserHandler: handler.NewUserHandler(&fakeUserService{}),
		PostHandler: handler.NewPostHandler(postSvc),
	}
	return api.SetupRouter(group, blacklist)
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) dto.Response {
	t.Helper()
	var resp dto.Response
	if err := json.Unmarshal(body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (%s)", err, body.String())
	}
	return resp
}

func TestLivenessRoute(t *testing.T) {
	router := newTestRouter(&fakePostService{}, &fakeBlacklist{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestFeedRouteShape(t *testing.T) {
	svc := &fakePostService{feed: []*dto.PostDTO{
		{ID: "p1", Caption: "newer", URL: "https://cdn.test/a.png"},
		{ID: "p2", Caption: "older", URL: "https://cdn.test/b.png"},
	}}
	router := newTestRouter(svc, &fakeBlacklist{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := decodeEnvelope(t, w.Body)

	data, _ := json.Marshal(resp.Data)
	var feed dto.FeedDTO
	if err := json.Unmarshal(data, &feed); err != nil {
		t.Fatalf("decode feed: %v", err)
	}
	if len(feed.Posts) != 2 || feed.Posts[0].ID != "p1" {
		t.Fatalf("feed order/shape wrong: %+v", feed.Posts)
	}
}

func TestUploadRequiresToken(t *testing.T) {
	router := newTestRouter(&fakePostService{}, &fakeBlacklist{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestUploadWithToken(t *testing.T) {
	svc := &fakePostService{}
	router := newTestRouter(svc, &fakeBlacklist{})

	token, err := security.GenerateToken("u-1")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "cat.png")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err = fw.Write([]byte("png bytes")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err = mw.WriteField("caption", "hi"); err != nil {
		t.Fatalf("write caption: %v", err)
	}
	_ = mw.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if svc.created == nil {
		t.Fatalf("service never received the upload")
	}
	if svc.created.UserID != "u-1" {
		t.Fatalf("token identity not propagated, got %q", svc.created.UserID)
	}
	if svc.created.Caption != "hi" {
		t.Fatalf("caption not propagated, got %q", svc.created.Caption)
	}
}

func TestDeleteUnknownPostIs404(t *testing.T) {
	svc := &fakePostService{deleteErr: service.ErrPostNotFound}
	router := newTestRouter(svc, &fakeBlacklist{})

	token, err := security.GenerateToken("u-1")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/posts/xyz", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestRevokedTokenRejected(t *testing.T) {
	blacklist := &fakeBlacklist{revoked: map[string]bool{}}
	router := newTestRouter(&fakePostService{}, blacklist)

	token, err := security.GenerateToken("u-1")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		t.Fatalf("extract signature: %v", err)
	}
	blacklist.revoked[signature] = true

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked token, got %d", w.Code)
	}
}
