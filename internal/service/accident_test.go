package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"roadguard/internal/domain"
	"roadguard/internal/service"
	mock_service "roadguard/internal/service/mocks"
	"roadguard/pkg/e"
)

func reportReq() domain.ReportAccidentRequest {
	return domain.ReportAccidentRequest{
		Description:      "two-car collision",
		Latitude:         55.75,
		Longitude:        37.61,
		Address:          "Main St / 5th Ave",
		VehiclesInvolved: 2,
		Injuries:         1,
	}
}

func TestAccidentService_Report_DerivesSeverityFromFacts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockAccidentRepository(ctrl)

	var created *domain.Accident
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, acc *domain.Accident) error {
			created = acc
			return nil
		}).
		Times(1)

	svc := service.NewAccidentService(repo, nil, nil, nil, discardLogger())

	// 2 vehicles + 1 injury = 40 -> moderate on the enum table
	acc, err := svc.Report(context.Background(), reportReq())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if created == nil {
		t.Fatalf("expected accident passed to repo.Create")
	}
	if acc.Severity != domain.SeverityModerate {
		t.Fatalf("expected moderate severity, got %q", acc.Severity)
	}
	if acc.Status != domain.AccidentReported {
		t.Fatalf("expected reported status, got %q", acc.Status)
	}
	if acc.ReportedBy != "system" {
		t.Fatalf("expected reporter default system, got %q", acc.ReportedBy)
	}
	if !strings.HasPrefix(acc.ReportNumber, "ACC-") {
		t.Fatalf("unexpected report number %q", acc.ReportNumber)
	}
	if acc.OccurredAt.IsZero() {
		t.Fatalf("occurred_at must default to now")
	}
}

func TestAccidentService_Report_RetriesOnReportNumberCollision(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockAccidentRepository(ctrl)

	var numbers []string
	gomock.InOrder(
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, acc *domain.Accident) error {
				numbers = append(numbers, acc.ReportNumber)
				return e.Wrap("postgres.Accident.Create", e.ErrUniqueViolation)
			}).
			Times(1),
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, acc *domain.Accident) error {
				numbers = append(numbers, acc.ReportNumber)
				return nil
			}).
			Times(1),
	)

	svc := service.NewAccidentService(repo, nil, nil, nil, discardLogger())

	if _, err := svc.Report(context.Background(), reportReq()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(numbers) != 2 {
		t.Fatalf("expected 2 create attempts, got %d", len(numbers))
	}
}

func TestAccidentService_Report_NonCollisionErrorNotRetried(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockAccidentRepository(ctrl)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(errors.New("db down")).
		Times(1)

	svc := service.NewAccidentService(repo, nil, nil, nil, discardLogger())

	if _, err := svc.Report(context.Background(), reportReq()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestAccidentService_ReportWithAnalysis_FullPipeline(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockAccidentRepository(ctrl)
	store := mock_service.NewMockEvidenceStore(ctrl)
	scorer := mock_service.NewMockEvidenceScorer(ctrl)
	dispatcher := mock_service.NewMockDispatcher(ctrl)

	files := []domain.EvidenceFile{
		{Name: "front.jpg", Size: 100, MimeType: "image/jpeg", Data: []byte("a")},
		{Name: "side.png", Size: 200, MimeType: "image/png", Data: []byte("b")},
	}

	store.EXPECT().
		ValidateAndUpload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f domain.EvidenceFile) (domain.UploadResult, error) {
			return domain.UploadResult{FileURL: "http://files/" + f.Name, FileName: f.Name}, nil
		}).
		Times(2)

	analysis := domain.SeverityAnalysisResult{
		Severity:            85,
		Analysis:            "severe multi-vehicle collision",
		RecommendedServices: []string{"police", "ambulance", "fire"},
	}
	scorer.EXPECT().
		AnalyzeEvidence(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, urls []string) domain.SeverityAnalysisResult {
			if len(urls) != 2 {
				t.Fatalf("expected 2 image urls, got %d", len(urls))
			}
			return analysis
		}).
		Times(1)

	var created *domain.Accident
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, acc *domain.Accident) error {
			created = acc
			return nil
		}).
		Times(1)

	// the dispatcher receives the raw 0-100 score, not the enum
	dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), "reporter-1", 85, domain.Location{Latitude: 55.75, Longitude: 37.61}).
		Return(&domain.DispatchResult{DispatchTime: time.Now()}, nil).
		Times(1)

	svc := service.NewAccidentService(repo, store, scorer, dispatcher, discardLogger())

	res, err := svc.ReportWithAnalysis(context.Background(), reportReq(), files, "reporter-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if created.Severity != domain.SeverityCritical {
		t.Fatalf("score 85 must map to critical, got %q", created.Severity)
	}
	if res.Accident.ID != created.ID {
		t.Fatalf("result must carry the created accident")
	}
	if len(res.UploadedEvidence) != 2 {
		t.Fatalf("expected 2 uploads in result, got %d", len(res.UploadedEvidence))
	}
}

func TestAccidentService_ReportWithAnalysis_FallbackScoreMapsToSevere(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockAccidentRepository(ctrl)
	store := mock_service.NewMockEvidenceStore(ctrl)
	scorer := mock_service.NewMockEvidenceScorer(ctrl)
	dispatcher := mock_service.NewMockDispatcher(ctrl)

	store.EXPECT().
		ValidateAndUpload(gomock.Any(), gomock.Any()).
		Return(domain.UploadResult{FileURL: "http://files/x.jpg"}, nil).
		Times(1)

	// scorer degraded: fixed fallback result
	scorer.EXPECT().
		AnalyzeEvidence(gomock.Any(), gomock.Any()).
		Return(service.FallbackAnalysis()).
		Times(1)

	var created *domain.Accident
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, acc *domain.Accident) error {
			created = acc
			return nil
		}).
		Times(1)

	dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), gomock.Any(), 65, gomock.Any()).
		Return(&domain.DispatchResult{}, nil).
		Times(1)

	svc := service.NewAccidentService(repo, store, scorer, dispatcher, discardLogger())

	files := []domain.EvidenceFile{{Name: "x.jpg", Size: 1, MimeType: "image/jpeg", Data: []byte("x")}}
	if _, err := svc.ReportWithAnalysis(context.Background(), reportReq(), files, "u"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Severity != domain.SeveritySevere {
		t.Fatalf("fallback score 65 must map to severe, got %q", created.Severity)
	}
}

func TestAccidentService_ReportWithAnalysis_RejectedUploadAborts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockAccidentRepository(ctrl)
	store := mock_service.NewMockEvidenceStore(ctrl)
	scorer := mock_service.NewMockEvidenceScorer(ctrl)
	dispatcher := mock_service.NewMockDispatcher(ctrl)

	files := []domain.EvidenceFile{
		{Name: "ok.jpg", Size: 1, MimeType: "image/jpeg", Data: []byte("x")},
		{Name: "bad.gif", Size: 1, MimeType: "image/gif", Data: []byte("y")},
	}

	store.EXPECT().
		ValidateAndUpload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f domain.EvidenceFile) (domain.UploadResult, error) {
			if f.MimeType != "image/jpeg" {
				return domain.UploadResult{}, e.Wrap("upload", e.ErrValidation)
			}
			return domain.UploadResult{FileURL: "http://files/ok.jpg"}, nil
		}).
		Times(2)

	// nothing else may run: no analysis, no create, no dispatch

	svc := service.NewAccidentService(repo, store, scorer, dispatcher, discardLogger())

	_, err := svc.ReportWithAnalysis(context.Background(), reportReq(), files, "u")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, e.ErrValidation) {
		t.Fatalf("expected ErrValidation, got: %v", err)
	}
}

func TestAccidentService_ReportWithAnalysis_EmptyRequesterDefaultsToSystem(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockAccidentRepository(ctrl)
	store := mock_service.NewMockEvidenceStore(ctrl)
	scorer := mock_service.NewMockEvidenceScorer(ctrl)
	dispatcher := mock_service.NewMockDispatcher(ctrl)

	store.EXPECT().ValidateAndUpload(gomock.Any(), gomock.Any()).Return(domain.UploadResult{}, nil).Times(1)
	scorer.EXPECT().AnalyzeEvidence(gomock.Any(), gomock.Any()).Return(service.FallbackAnalysis()).Times(1)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	dispatcher.EXPECT().
		Dispatch(gomock.Any(), gomock.Any(), "system", gomock.Any(), gomock.Any()).
		Return(&domain.DispatchResult{}, nil).
		Times(1)

	svc := service.NewAccidentService(repo, store, scorer, dispatcher, discardLogger())

	files := []domain.EvidenceFile{{Name: "x.jpg", Size: 1, MimeType: "image/jpeg", Data: []byte("x")}}
	if _, err := svc.ReportWithAnalysis(context.Background(), reportReq(), files, ""); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

// --- UpdateStatus state machine ---

func TestAccidentService_UpdateStatus_AllowedTransition(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockAccidentRepository(ctrl)

	id := uuid.New()
	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any(), id).
			Return(&domain.Accident{ID: id, Status: domain.AccidentReported}, nil).
			Times(1),
		repo.EXPECT().UpdateStatus(gomock.Any(), id, domain.AccidentRespondersDispatched).
			Return(nil).
			Times(1),
	)

	svc := service.NewAccidentService(repo, nil, nil, nil, discardLogger())

	if err := svc.UpdateStatus(context.Background(), id, domain.AccidentRespondersDispatched); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestAccidentService_UpdateStatus_RejectedTransition(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockAccidentRepository(ctrl)

	id := uuid.New()
	repo.EXPECT().Get(gomock.Any(), id).
		Return(&domain.Accident{ID: id, Status: domain.AccidentClosed}, nil).
		Times(1)
	// UpdateStatus must not be called on the repo

	svc := service.NewAccidentService(repo, nil, nil, nil, discardLogger())

	err := svc.UpdateStatus(context.Background(), id, domain.AccidentReported)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, e.ErrBadTransition) {
		t.Fatalf("expected ErrBadTransition, got: %v", err)
	}
}

func TestAccidentService_UpdateStatus_UnknownStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockAccidentRepository(ctrl)

	svc := service.NewAccidentService(repo, nil, nil, nil, discardLogger())

	err := svc.UpdateStatus(context.Background(), uuid.New(), domain.AccidentStatus("exploded"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got: %v", err)
	}
}
