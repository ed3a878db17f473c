package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-secure-data/internal/config"
	"github.com/MKhiriev/go-secure-data/internal/logger"
	"github.com/MKhiriev/go-secure-data/internal/mock"
	"github.com/MKhiriev/go-secure-data/internal/service"
	"github.com/MKhiriev/go-secure-data/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "test-token"

type testMocks struct {
	pipeline *mock.MockPipelineService
	shares   *mock.MockSharesService
	auth     *mock.MockAuthService
	appInfo  *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, cfg *config.StructuredConfig) (*Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := testMocks{
		pipeline: mock.NewMockPipelineService(ctrl),
		shares:   mock.NewMockSharesService(ctrl),
		auth:     mock.NewMockAuthService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}
	if cfg == nil {
		cfg = &config.StructuredConfig{}
	}

	h := NewHandler(&service.Services{
		PipelineService: m.pipeline,
		SharesService:   m.shares,
		AuthService:     m.auth,
		AppInfoService:  m.appInfo,
	}, cfg, logger.Nop())
	return h, m
}

// expectUser makes testToken authenticate as userID.
func (m testMocks) expectUser(userID uuid.UUID) {
	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).
		Return(models.Token{SignedString: testToken, UserID: userID}, nil).AnyTimes()
}

func newAuthorizedRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}
