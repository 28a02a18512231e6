//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"roadguard/internal/domain"
	"roadguard/pkg/e"
)

var (
	testPool   *pgxpool.Pool
	testLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	tc         testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS accidents (
			id uuid PRIMARY KEY,
			report_number text NOT NULL UNIQUE,
			description text NOT NULL,
			severity text NOT NULL,
			status text NOT NULL,
			latitude double precision NOT NULL,
			longitude double precision NOT NULL,
			address text NOT NULL,
			occurred_at timestamptz NOT NULL,
			weather_conditions text NOT NULL DEFAULT '',
			road_conditions text NOT NULL DEFAULT '',
			vehicles_involved int NOT NULL,
			injuries int NOT NULL,
			fatalities int NOT NULL,
			reported_by text NOT NULL,
			assigned_officer_id uuid,
			created_at timestamptz NOT NULL,
			updated_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS emergency_services (
			id uuid PRIMARY KEY,
			accident_id uuid NOT NULL REFERENCES accidents(id) ON DELETE CASCADE,
			type text NOT NULL,
			status text NOT NULL,
			service_provider text NOT NULL,
			contact_number text NOT NULL,
			seq int NOT NULL,
			dispatched_at timestamptz,
			arrived_at timestamptz,
			completed_at timestamptz,
			responder_id uuid,
			notes text NOT NULL DEFAULT '',
			created_at timestamptz NOT NULL,
			updated_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS notifications (
			id uuid PRIMARY KEY,
			user_id text NOT NULL,
			type text NOT NULL,
			title text NOT NULL,
			message text NOT NULL,
			priority text NOT NULL,
			accident_id uuid REFERENCES accidents(id) ON DELETE CASCADE,
			is_read boolean NOT NULL DEFAULT FALSE,
			read_at timestamptz,
			created_at timestamptz NOT NULL
		);
	`)
	return err
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE notifications, emergency_services, accidents`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func newAccident(reportNumber string) *domain.Accident {
	now := time.Now().UTC()
	return &domain.Accident{
		ID:               uuid.New(),
		ReportNumber:     reportNumber,
		Description:      "two-car collision at intersection",
		Severity:         domain.SeverityModerate,
		Status:           domain.AccidentReported,
		Latitude:         55.75,
		Longitude:        37.61,
		Address:          "Main St / 5th Ave",
		OccurredAt:       now,
		VehiclesInvolved: 2,
		Injuries:         0,
		Fatalities:       0,
		ReportedBy:       "system",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func newService(accidentID uuid.UUID, typ domain.ServiceType, seq int) *domain.EmergencyService {
	now := time.Now().UTC()
	return &domain.EmergencyService{
		ID:              uuid.New(),
		AccidentID:      accidentID,
		Type:            typ,
		Status:          domain.ServiceDispatched,
		ServiceProvider: "Local Police Department",
		ContactNumber:   "911",
		Seq:             seq,
		DispatchedAt:    &now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func newNotification(accidentID uuid.UUID) *domain.Notification {
	accID := accidentID
	return &domain.Notification{
		ID:        uuid.New(),
		UserID:    "user-1",
		Type:      domain.NotificationEmergencyAlert,
		Title:     "Emergency Services Dispatched",
		Message:   "services on the way",
		Priority:  domain.PriorityHigh,
		AccidentID: &accID,
		CreatedAt: time.Now().UTC(),
	}
}

func TestAccidentRepo_Create_RoundTrip(t *testing.T) {
	truncateAll(t)

	repo := NewAccidentRepo(testPool, testLogger)

	acc := newAccident("ACC-2026-000001")
	if err := repo.Create(context.Background(), acc); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(context.Background(), acc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ReportNumber != acc.ReportNumber {
		t.Fatalf("report number mismatch got=%s want=%s", got.ReportNumber, acc.ReportNumber)
	}
	if got.Severity != domain.SeverityModerate || got.Status != domain.AccidentReported {
		t.Fatalf("unexpected row: %+v", got)
	}

	byNumber, err := repo.GetByReportNumber(context.Background(), acc.ReportNumber)
	if err != nil {
		t.Fatalf("GetByReportNumber: %v", err)
	}
	if byNumber.ID != acc.ID {
		t.Fatalf("id mismatch got=%s want=%s", byNumber.ID, acc.ID)
	}
}

func TestAccidentRepo_Create_DuplicateReportNumber(t *testing.T) {
	truncateAll(t)

	repo := NewAccidentRepo(testPool, testLogger)

	if err := repo.Create(context.Background(), newAccident("ACC-2026-000002")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := repo.Create(context.Background(), newAccident("ACC-2026-000002"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, e.ErrUniqueViolation) {
		t.Fatalf("expected ErrUniqueViolation, got: %v", err)
	}
}

func TestAccidentRepo_UpdateStatus_NotFound(t *testing.T) {
	truncateAll(t)

	repo := NewAccidentRepo(testPool, testLogger)

	err := repo.UpdateStatus(context.Background(), uuid.New(), domain.AccidentResolved)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestAccidentRepo_AssignOfficer(t *testing.T) {
	truncateAll(t)

	repo := NewAccidentRepo(testPool, testLogger)

	acc := newAccident("ACC-2026-000003")
	if err := repo.Create(context.Background(), acc); err != nil {
		t.Fatalf("Create: %v", err)
	}

	officerID := uuid.New()
	if err := repo.AssignOfficer(context.Background(), acc.ID, officerID); err != nil {
		t.Fatalf("AssignOfficer: %v", err)
	}

	got, err := repo.Get(context.Background(), acc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.AssignedOfficerID == nil || *got.AssignedOfficerID != officerID {
		t.Fatalf("expected assigned officer %s, got %v", officerID, got.AssignedOfficerID)
	}
}

func TestAccidentRepo_Delete_CascadesDispatchRecords(t *testing.T) {
	truncateAll(t)

	accRepo := NewAccidentRepo(testPool, testLogger)
	dispRepo := NewDispatchRepo(testPool, testLogger)

	acc := newAccident("ACC-2026-000004")
	if err := accRepo.Create(context.Background(), acc); err != nil {
		t.Fatalf("Create: %v", err)
	}

	services := []*domain.EmergencyService{
		newService(acc.ID, domain.ServicePolice, 0),
		newService(acc.ID, domain.ServiceAmbulance, 1),
	}
	if err := dispRepo.CreateBatch(context.Background(), services, newNotification(acc.ID)); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	if err := accRepo.Delete(context.Background(), acc.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	left, err := dispRepo.ListByAccident(context.Background(), acc.ID)
	if err != nil {
		t.Fatalf("ListByAccident: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("expected cascade delete, got %d rows", len(left))
	}
}

func TestDispatchRepo_CreateBatch_Atomic(t *testing.T) {
	truncateAll(t)

	accRepo := NewAccidentRepo(testPool, testLogger)
	dispRepo := NewDispatchRepo(testPool, testLogger)

	acc := newAccident("ACC-2026-000005")
	if err := accRepo.Create(context.Background(), acc); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// second service references a missing accident, so the whole batch
	// must roll back
	bad := newService(uuid.New(), domain.ServiceAmbulance, 1)
	services := []*domain.EmergencyService{
		newService(acc.ID, domain.ServicePolice, 0),
		bad,
	}

	err := dispRepo.CreateBatch(context.Background(), services, newNotification(acc.ID))
	if err == nil {
		t.Fatalf("expected error")
	}

	left, err := dispRepo.ListByAccident(context.Background(), acc.ID)
	if err != nil {
		t.Fatalf("ListByAccident: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("expected rollback to leave no rows, got %d", len(left))
	}
}

func TestDispatchRepo_HasDispatch(t *testing.T) {
	truncateAll(t)

	accRepo := NewAccidentRepo(testPool, testLogger)
	dispRepo := NewDispatchRepo(testPool, testLogger)

	acc := newAccident("ACC-2026-000006")
	if err := accRepo.Create(context.Background(), acc); err != nil {
		t.Fatalf("Create: %v", err)
	}

	has, err := dispRepo.HasDispatch(context.Background(), acc.ID)
	if err != nil {
		t.Fatalf("HasDispatch: %v", err)
	}
	if has {
		t.Fatalf("expected no dispatch yet")
	}

	services := []*domain.EmergencyService{newService(acc.ID, domain.ServicePolice, 0)}
	if err := dispRepo.CreateBatch(context.Background(), services, newNotification(acc.ID)); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	has, err = dispRepo.HasDispatch(context.Background(), acc.ID)
	if err != nil {
		t.Fatalf("HasDispatch: %v", err)
	}
	if !has {
		t.Fatalf("expected dispatch to exist")
	}
}

func TestDispatchRepo_AdvanceStatus_SetsArrivedOnce(t *testing.T) {
	truncateAll(t)

	accRepo := NewAccidentRepo(testPool, testLogger)
	dispRepo := NewDispatchRepo(testPool, testLogger)

	acc := newAccident("ACC-2026-000007")
	if err := accRepo.Create(context.Background(), acc); err != nil {
		t.Fatalf("Create: %v", err)
	}

	svc := newService(acc.ID, domain.ServicePolice, 0)
	if err := dispRepo.CreateBatch(context.Background(), []*domain.EmergencyService{svc}, newNotification(acc.ID)); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	if err := dispRepo.AdvanceStatus(context.Background(), svc.ID, domain.ServiceEnRoute); err != nil {
		t.Fatalf("AdvanceStatus en_route: %v", err)
	}
	if err := dispRepo.AdvanceStatus(context.Background(), svc.ID, domain.ServiceOnScene); err != nil {
		t.Fatalf("AdvanceStatus on_scene: %v", err)
	}

	list, err := dispRepo.ListByAccident(context.Background(), acc.ID)
	if err != nil {
		t.Fatalf("ListByAccident: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 service, got %d", len(list))
	}
	if list[0].ArrivedAt == nil {
		t.Fatalf("expected arrived_at set on on_scene transition")
	}
	arrivedAt := *list[0].ArrivedAt

	if err := dispRepo.AdvanceStatus(context.Background(), svc.ID, domain.ServiceCompleted); err != nil {
		t.Fatalf("AdvanceStatus completed: %v", err)
	}

	list, err = dispRepo.ListByAccident(context.Background(), acc.ID)
	if err != nil {
		t.Fatalf("ListByAccident: %v", err)
	}
	if list[0].ArrivedAt == nil || !list[0].ArrivedAt.Equal(arrivedAt) {
		t.Fatalf("arrived_at must not change after first set")
	}
	if list[0].CompletedAt == nil {
		t.Fatalf("expected completed_at set")
	}
}

func TestDispatchRepo_AdvanceStatus_RejectsBackwards(t *testing.T) {
	truncateAll(t)

	accRepo := NewAccidentRepo(testPool, testLogger)
	dispRepo := NewDispatchRepo(testPool, testLogger)

	acc := newAccident("ACC-2026-000008")
	if err := accRepo.Create(context.Background(), acc); err != nil {
		t.Fatalf("Create: %v", err)
	}

	svc := newService(acc.ID, domain.ServicePolice, 0)
	if err := dispRepo.CreateBatch(context.Background(), []*domain.EmergencyService{svc}, newNotification(acc.ID)); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	if err := dispRepo.AdvanceStatus(context.Background(), svc.ID, domain.ServiceOnScene); err != nil {
		t.Fatalf("AdvanceStatus on_scene: %v", err)
	}

	err := dispRepo.AdvanceStatus(context.Background(), svc.ID, domain.ServiceEnRoute)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, e.ErrBadTransition) {
		t.Fatalf("expected ErrBadTransition, got: %v", err)
	}
}

func TestNotificationRepo_MarkRead_Idempotent(t *testing.T) {
	truncateAll(t)

	accRepo := NewAccidentRepo(testPool, testLogger)
	dispRepo := NewDispatchRepo(testPool, testLogger)
	notifRepo := NewNotificationRepo(testPool, testLogger)

	acc := newAccident("ACC-2026-000009")
	if err := accRepo.Create(context.Background(), acc); err != nil {
		t.Fatalf("Create: %v", err)
	}

	notif := newNotification(acc.ID)
	if err := dispRepo.CreateBatch(context.Background(), []*domain.EmergencyService{newService(acc.ID, domain.ServicePolice, 0)}, notif); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	if err := notifRepo.MarkRead(context.Background(), notif.ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}

	list, err := notifRepo.ListForUser(context.Background(), notif.UserID, 10)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(list) != 1 || !list[0].IsRead || list[0].ReadAt == nil {
		t.Fatalf("expected read notification, got %+v", list[0])
	}
	readAt := *list[0].ReadAt

	if err := notifRepo.MarkRead(context.Background(), notif.ID); err != nil {
		t.Fatalf("MarkRead repeat: %v", err)
	}

	list, err = notifRepo.ListForUser(context.Background(), notif.UserID, 10)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if !list[0].ReadAt.Equal(readAt) {
		t.Fatalf("read_at must not change on repeat MarkRead")
	}
}

func TestDispatchRepo_Statistics(t *testing.T) {
	truncateAll(t)

	accRepo := NewAccidentRepo(testPool, testLogger)
	dispRepo := NewDispatchRepo(testPool, testLogger)

	acc := newAccident("ACC-2026-000010")
	if err := accRepo.Create(context.Background(), acc); err != nil {
		t.Fatalf("Create: %v", err)
	}

	services := []*domain.EmergencyService{
		newService(acc.ID, domain.ServicePolice, 0),
		newService(acc.ID, domain.ServiceAmbulance, 1),
	}
	if err := dispRepo.CreateBatch(context.Background(), services, newNotification(acc.ID)); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	if err := dispRepo.AdvanceStatus(context.Background(), services[1].ID, domain.ServiceCompleted); err != nil {
		t.Fatalf("AdvanceStatus: %v", err)
	}

	stats, err := dispRepo.Statistics(context.Background())
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if stats.Total != 2 || stats.Active != 1 || stats.Completed != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
