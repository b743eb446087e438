package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/medialoc/crm-go/dto"
	"github.com/medialoc/crm-go/models"
	"github.com/medialoc/crm-go/repositories"
	"github.com/medialoc/crm-go/repositories/mock_repositories"
	"github.com/medialoc/crm-go/utils"
)

func setupDeliveryStatusMocks(t *testing.T) (*DeliveryStatusService,
	*mock_repositories.MockDeliveryStatusRepo,
	*mock_repositories.MockProjectRepo,
	*gin.Context) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockStatus := mock_repositories.NewMockDeliveryStatusRepo(ctrl)
	mockProject := mock_repositories.NewMockProjectRepo(ctrl)
	mockAudit := mock_repositories.NewMockAuditRepo(ctrl)

	repos := &repositories.Repos{
		DeliveryStatus: mockStatus,
		Project:        mockProject,
		Audit:          mockAudit,
	}

	svc := NewDeliveryStatusService(repos)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repositories.AuditRepo) {
	}

	return svc, mockStatus, mockProject, c
}

func qvoInput() dto.DeliveryStatusDTO {
	yes := true
	files := 3
	return dto.DeliveryStatusDTO{
		CRMProjectID:     10,
		ProjectType:      "QVO",
		ServiceType:      "Dub",
		NumberOfFiles:    &files,
		VoiceMatchNeeded: &yes,
	}
}

func TestCreateDeliveryStatusQVO(t *testing.T) {
	svc, mockStatus, mockProject, c := setupDeliveryStatusMocks(t)

	mockProject.EXPECT().GetProjectByID(uint(10)).Return(models.Project{OwnerID: 1}, nil)
	mockStatus.EXPECT().CreateDeliveryStatus(gomock.Any()).Return(nil)

	created, err := svc.CreateDeliveryStatus(c, 1, qvoInput())
	if err != nil {
		t.Fatalf("CreateDeliveryStatus failed: %v", err)
	}
	if created.ProjectType != "QVO" || created.OwnerID != 1 {
		t.Fatalf("unexpected record: %+v", created)
	}
	if created.VoiceMatchNeeded == nil || !*created.VoiceMatchNeeded {
		t.Fatalf("voice_match_needed not carried over")
	}
	if created.SourceWordCount != nil {
		t.Fatalf("DT field populated on a QVO record")
	}
}

func TestCreateDeliveryStatusRejectsInvalidType(t *testing.T) {
	svc, _, _, c := setupDeliveryStatusMocks(t)

	input := qvoInput()
	input.ProjectType = "AV"

	_, err := svc.CreateDeliveryStatus(c, 1, input)
	if !errors.Is(err, ErrInvalidProjectType) {
		t.Fatalf("want ErrInvalidProjectType, got %v", err)
	}
}

func TestCreateDeliveryStatusRejectsBlankServiceType(t *testing.T) {
	svc, _, _, c := setupDeliveryStatusMocks(t)

	input := qvoInput()
	input.ServiceType = "   "

	_, err := svc.CreateDeliveryStatus(c, 1, input)
	if !errors.Is(err, ErrEmptyServiceType) {
		t.Fatalf("want ErrEmptyServiceType, got %v", err)
	}
}

func TestCreateDeliveryStatusRejectsForeignProject(t *testing.T) {
	svc, _, mockProject, c := setupDeliveryStatusMocks(t)

	mockProject.EXPECT().GetProjectByID(uint(10)).Return(models.Project{OwnerID: 2}, nil)

	_, err := svc.CreateDeliveryStatus(c, 1, qvoInput())
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("want ErrProjectNotFound, got %v", err)
	}
}

func TestCreateDeliveryStatusRejectsMixedVariants(t *testing.T) {
	svc, _, mockProject, c := setupDeliveryStatusMocks(t)

	mockProject.EXPECT().GetProjectByID(uint(10)).Return(models.Project{OwnerID: 1}, nil)

	words := 500
	input := qvoInput()
	input.SourceWordCount = &words

	_, err := svc.CreateDeliveryStatus(c, 1, input)
	if !errors.Is(err, ErrVariantFieldMismatch) {
		t.Fatalf("want ErrVariantFieldMismatch, got %v", err)
	}
}

func TestCreateDeliveryStatusParsesCalendarDeadline(t *testing.T) {
	svc, mockStatus, mockProject, c := setupDeliveryStatusMocks(t)

	mockProject.EXPECT().GetProjectByID(uint(10)).Return(models.Project{OwnerID: 1}, nil)
	mockStatus.EXPECT().CreateDeliveryStatus(gomock.Any()).Return(nil)

	deadline := "2024-05-01T00:00:00Z"
	input := qvoInput()
	input.Deadline = &deadline

	created, err := svc.CreateDeliveryStatus(c, 1, input)
	if err != nil {
		t.Fatalf("CreateDeliveryStatus failed: %v", err)
	}
	if created.Deadline == nil || created.Deadline.Format("2006-01-02") != "2024-05-01" {
		t.Fatalf("deadline shifted: %v", created.Deadline)
	}
}

func TestUpdateDeliveryStatusImmutableDiscriminator(t *testing.T) {
	svc, mockStatus, _, c := setupDeliveryStatusMocks(t)

	existing := models.DeliveryStatus{OwnerID: 1, CRMProjectID: 10, ProjectType: "DT"}
	existing.ID = 5
	mockStatus.EXPECT().GetDeliveryStatusByID(uint(5)).Return(existing, nil)

	_, err := svc.UpdateDeliveryStatus(c, 1, 5, qvoInput())
	if !errors.Is(err, ErrImmutableField) {
		t.Fatalf("want ErrImmutableField, got %v", err)
	}
}

func TestUpdateDeliveryStatusClearsStaleVariantFields(t *testing.T) {
	svc, mockStatus, mockProject, c := setupDeliveryStatusMocks(t)

	words := 500
	existing := models.DeliveryStatus{
		OwnerID:         1,
		CRMProjectID:    10,
		ProjectType:     "QVO",
		ServiceType:     "Dub",
		SourceWordCount: &words, // stale DT leftover must not survive
	}
	existing.ID = 5

	mockStatus.EXPECT().GetDeliveryStatusByID(uint(5)).Return(existing, nil)
	mockProject.EXPECT().GetProjectByID(uint(10)).Return(models.Project{OwnerID: 1}, nil)
	mockStatus.EXPECT().UpdateDeliveryStatus(gomock.Any()).Return(nil)

	updated, err := svc.UpdateDeliveryStatus(c, 1, 5, qvoInput())
	if err != nil {
		t.Fatalf("UpdateDeliveryStatus failed: %v", err)
	}
	if updated.SourceWordCount != nil {
		t.Fatalf("DT field survived on a QVO record")
	}
}

func TestUpdateDeliveryStatusNotOwned(t *testing.T) {
	svc, mockStatus, _, c := setupDeliveryStatusMocks(t)

	existing := models.DeliveryStatus{OwnerID: 2, CRMProjectID: 10, ProjectType: "QVO"}
	mockStatus.EXPECT().GetDeliveryStatusByID(uint(5)).Return(existing, nil)

	_, err := svc.UpdateDeliveryStatus(c, 1, 5, qvoInput())
	if !errors.Is(err, ErrDeliveryStatusNotFound) {
		t.Fatalf("want ErrDeliveryStatusNotFound, got %v", err)
	}
}

func TestListMyDeliveryStatuses(t *testing.T) {
	svc, mockStatus, _, _ := setupDeliveryStatusMocks(t)

	records := []models.DeliveryStatus{{OwnerID: 1, ProjectType: "DT"}}
	mockStatus.EXPECT().ListDeliveryStatusesByOwner(uint(1), []uint{7}).Return(records, nil)

	got, err := svc.ListMyDeliveryStatuses(1, []uint{7})
	if err != nil || len(got) != 1 {
		t.Fatalf("ListMyDeliveryStatuses failed: %v (%d records)", err, len(got))
	}
}
