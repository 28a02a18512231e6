package public_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"roadguard/internal/api/handlers/http/public"
	mock_public "roadguard/internal/api/handlers/http/public/mocks"
	"roadguard/internal/domain"
	"roadguard/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newHandler(ctrl *gomock.Controller) (*public.Handler, *mock_public.MockAccidentReporter, *mock_public.MockSeverityClassifier, *mock_public.MockNotificationReader) {
	accidents := mock_public.NewMockAccidentReporter(ctrl)
	severity := mock_public.NewMockSeverityClassifier(ctrl)
	notifications := mock_public.NewMockNotificationReader(ctrl)
	return public.NewHandler(newTestLogger(), accidents, severity, notifications), accidents, severity, notifications
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

const validReportJSON = `{"description":"Two-car collision at the intersection","latitude":55.75,"longitude":37.61,"address":"Tverskaya 1","vehicles_involved":2,"injuries":1}`

func TestAccidentReport_OK_201(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, accidents, _, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accidents/", bytes.NewBufferString(validReportJSON))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	want := &domain.Accident{
		ID:           uuid.New(),
		ReportNumber: "ACC-2026-000042",
		Severity:     domain.SeverityModerate,
		Status:       domain.AccidentReported,
	}

	accidents.EXPECT().
		Report(gomock.Any(), gomock.AssignableToTypeOf(domain.ReportAccidentRequest{})).
		DoAndReturn(func(_ context.Context, req domain.ReportAccidentRequest) (*domain.Accident, error) {
			if req.VehiclesInvolved != 2 || req.Injuries != 1 {
				t.Fatalf("request not passed through: %+v", req)
			}
			return want, nil
		}).
		Times(1)

	h.AccidentReport(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.Accident](t, rr)
	if got.ReportNumber != want.ReportNumber {
		t.Fatalf("expected report_number=%s got=%s", want.ReportNumber, got.ReportNumber)
	}
}

func TestAccidentReport_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accidents/", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.AccidentReport(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAccidentReport_UnknownField_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	body := `{"description":"x","latitude":55.75,"longitude":37.61,"address":"a","bogus":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accidents/", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.AccidentReport(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAccidentReport_MissingAddress_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	body := `{"description":"Two-car collision","latitude":55.75,"longitude":37.61}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accidents/", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	h.AccidentReport(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func multipartIntakeBody(t *testing.T, reportJSON string, images ...string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("report", reportJSON); err != nil {
		t.Fatalf("write report field: %v", err)
	}
	for _, name := range images {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", `form-data; name="images"; filename="`+name+`"`)
		hdr.Set("Content-Type", "image/jpeg")
		part, err := mw.CreatePart(hdr)
		if err != nil {
			t.Fatalf("create image part: %v", err)
		}
		if _, err := part.Write([]byte("fake-jpeg-bytes")); err != nil {
			t.Fatalf("write image part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestAccidentAnalyze_OK_201(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, accidents, _, _ := newHandler(ctrl)

	body, contentType := multipartIntakeBody(t, validReportJSON, "crash1.jpg", "crash2.jpg")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accidents/analyze", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-User-ID", "reporter-1")
	rr := httptest.NewRecorder()

	want := &domain.IntakeResult{
		Accident: &domain.Accident{ID: uuid.New(), Severity: domain.SeverityCritical},
		UploadedEvidence: []domain.UploadResult{
			{FileURL: "http://files/a.jpg"},
			{FileURL: "http://files/b.jpg"},
		},
	}

	accidents.EXPECT().
		ReportWithAnalysis(gomock.Any(), gomock.Any(), gomock.Any(), "reporter-1").
		DoAndReturn(func(_ context.Context, req domain.ReportAccidentRequest, files []domain.EvidenceFile, _ string) (*domain.IntakeResult, error) {
			if len(files) != 2 {
				t.Fatalf("expected 2 files, got %d", len(files))
			}
			if files[0].Name != "crash1.jpg" || files[0].MimeType != "image/jpeg" {
				t.Fatalf("file metadata not passed through: %+v", files[0])
			}
			if len(files[0].Data) == 0 {
				t.Fatalf("file data not read")
			}
			if req.Description == "" {
				t.Fatalf("report part not decoded")
			}
			return want, nil
		}).
		Times(1)

	h.AccidentAnalyze(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.IntakeResult](t, rr)
	if len(got.UploadedEvidence) != 2 {
		t.Fatalf("expected 2 uploads, got %d", len(got.UploadedEvidence))
	}
}

func TestAccidentAnalyze_NoImages_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	body, contentType := multipartIntakeBody(t, validReportJSON)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accidents/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.AccidentAnalyze(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAccidentAnalyze_BadReportJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	body, contentType := multipartIntakeBody(t, "{bad json", "crash.jpg")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accidents/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.AccidentAnalyze(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAccidentAnalyze_RejectedUpload_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, accidents, _, _ := newHandler(ctrl)

	body, contentType := multipartIntakeBody(t, validReportJSON, "crash.jpg")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accidents/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	accidents.EXPECT().
		ReportWithAnalysis(gomock.Any(), gomock.Any(), gomock.Any(), "").
		Return(nil, e.ErrValidation).
		Times(1)

	h.AccidentAnalyze(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestAccidentGet_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, accidents, _, _ := newHandler(ctrl)

	id := uuid.New()
	want := &domain.Accident{ID: id, ReportNumber: "ACC-2026-000007"}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accidents/"+id.String(), nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	accidents.EXPECT().
		Get(gomock.Any(), id).
		Return(want, nil).
		Times(1)

	h.AccidentGet(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.Accident](t, rr)
	if got.ID != id {
		t.Fatalf("expected id=%s got=%s", id, got.ID)
	}
}

func TestAccidentGet_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, accidents, _, _ := newHandler(ctrl)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accidents/"+id.String(), nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	accidents.EXPECT().
		Get(gomock.Any(), id).
		Return(nil, e.ErrNotFound).
		Times(1)

	h.AccidentGet(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestAccidentGetByReportNumber_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, accidents, _, _ := newHandler(ctrl)

	want := &domain.Accident{ID: uuid.New(), ReportNumber: "ACC-2026-000123"}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accidents/report/ACC-2026-000123", nil)
	req = addChiURLParam(req, "reportNumber", "ACC-2026-000123")
	rr := httptest.NewRecorder()

	accidents.EXPECT().
		GetByReportNumber(gomock.Any(), "ACC-2026-000123").
		Return(want, nil).
		Times(1)

	h.AccidentGetByReportNumber(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestSeverityClassify_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, severity, _ := newHandler(ctrl)

	body := `{"vehicles_involved":3,"injuries":2,"weather_conditions":"heavy rain"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/severity/classify", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	severity.EXPECT().
		Classify(domain.ClassifySeverityRequest{VehiclesInvolved: 3, Injuries: 2, WeatherConditions: "heavy rain"}).
		Return(domain.ClassificationResult{
			Severity:                  80,
			Classification:            "critical",
			RequiresEmergencyServices: true,
			RecommendedServices:       []domain.ServiceType{domain.ServicePolice, domain.ServiceAmbulance, domain.ServiceFireDepartment},
		}).
		Times(1)

	h.SeverityClassify(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.ClassificationResult](t, rr)
	if got.Severity != 80 || !got.RequiresEmergencyServices {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestSeverityClassify_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/severity/classify", bytes.NewBufferString("{bad"))
	rr := httptest.NewRecorder()

	h.SeverityClassify(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestNotificationList_QueryParam_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, notifications := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications/?user_id=user-1&limit=10", nil)
	rr := httptest.NewRecorder()

	notifications.EXPECT().
		ListForUser(gomock.Any(), "user-1", 10).
		Return([]*domain.Notification{{ID: uuid.New()}}, nil).
		Times(1)

	h.NotificationList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	resp := decodeJSON[map[string]any](t, rr)
	if int(resp["count"].(float64)) != 1 {
		t.Fatalf("expected count=1, got %+v", resp)
	}
}

func TestNotificationList_HeaderFallback_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, notifications := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications/", nil)
	req.Header.Set("X-User-ID", "user-2")
	rr := httptest.NewRecorder()

	notifications.EXPECT().
		ListForUser(gomock.Any(), "user-2", 50).
		Return([]*domain.Notification{}, nil).
		Times(1)

	h.NotificationList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestNotificationList_MissingUser_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications/", nil)
	rr := httptest.NewRecorder()

	h.NotificationList(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestNotificationMarkRead_OK_204(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, notifications := newHandler(ctrl)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/notifications/"+id.String()+"/read", nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	notifications.EXPECT().
		MarkRead(gomock.Any(), id).
		Return(nil).
		Times(1)

	h.NotificationMarkRead(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestNotificationMarkRead_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/notifications/bad/read", nil)
	req = addChiURLParam(req, "id", "not-a-uuid")
	rr := httptest.NewRecorder()

	h.NotificationMarkRead(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}
