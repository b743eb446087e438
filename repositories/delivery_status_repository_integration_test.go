//go:build integration
// +build integration

package repositories

import (
	"log"
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/medialoc/crm-go/db"
	"github.com/medialoc/crm-go/internal/testutils"
	"github.com/medialoc/crm-go/models"
)

func TestMain(m *testing.M) {
	_, dsn, cleanup := testutils.SetupPostgresForIntegration()

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open gorm: %v", err)
	}
	db.DB = gormDB

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func seedProject(t *testing.T, ownerID uint) models.Project {
	t.Helper()

	account := models.Account{AccountName: "Acme", AccountType: "Client", OwnerID: ownerID}
	if err := db.DB.Create(&account).Error; err != nil {
		t.Fatalf("seed account: %v", err)
	}
	project := models.Project{ProjectName: "Atlas", Status: "In Progress", AccountID: account.ID, OwnerID: ownerID}
	if err := db.DB.Create(&project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return project
}

func seedUser(t *testing.T, name string) models.User {
	t.Helper()

	user := models.User{
		UserName:        name,
		SecretKeyLookup: name + "-lookup",
		SecretKeyHash:   "x",
		Role:            "sales_executive",
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestDeliveryStatusOwnerScoping(t *testing.T) {
	repo := &DBDeliveryStatusRepo{}

	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	aliceProject := seedProject(t, alice.ID)
	bobProject := seedProject(t, bob.ID)

	yes := true
	mine := models.DeliveryStatus{
		OwnerID:          alice.ID,
		CRMProjectID:     aliceProject.ID,
		ProjectType:      "QVO",
		ServiceType:      "Dub",
		VoiceMatchNeeded: &yes,
	}
	theirs := models.DeliveryStatus{
		OwnerID:      bob.ID,
		CRMProjectID: bobProject.ID,
		ProjectType:  "DT",
		ServiceType:  "Translation",
	}
	if err := repo.CreateDeliveryStatus(&mine); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.CreateDeliveryStatus(&theirs); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.ListDeliveryStatusesByOwner(alice.ID, nil)
	if err != nil {
		t.Fatalf("list by owner: %v", err)
	}
	if len(got) != 1 || got[0].ID != mine.ID {
		t.Fatalf("owner scoping broken: %+v", got)
	}

	// The ids filter narrows within the owner's records and cannot reach
	// across owners.
	got, err = repo.ListDeliveryStatusesByOwner(alice.ID, []uint{theirs.ID})
	if err != nil {
		t.Fatalf("list by owner with ids: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("ids filter leaked another owner's record: %+v", got)
	}

	all, err := repo.ListDeliveryStatuses()
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) < 2 {
		t.Fatalf("want both records for delivery head view, got %d", len(all))
	}
}

func TestDeliveryStatusTriStateRoundTrip(t *testing.T) {
	repo := &DBDeliveryStatusRepo{}

	user := seedUser(t, "carol")
	project := seedProject(t, user.ID)

	no := false
	status := models.DeliveryStatus{
		OwnerID:        user.ID,
		CRMProjectID:   project.ID,
		ProjectType:    "QVO",
		ServiceType:    "Dub",
		LipMatchNeeded: &no,
		// VoiceMatchNeeded left nil: unknown must stay NULL, not false
	}
	if err := repo.CreateDeliveryStatus(&status); err != nil {
		t.Fatalf("create: %v", err)
	}

	loaded, err := repo.GetDeliveryStatusByID(status.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.VoiceMatchNeeded != nil {
		t.Fatalf("unknown tri-state persisted as %v", *loaded.VoiceMatchNeeded)
	}
	if loaded.LipMatchNeeded == nil || *loaded.LipMatchNeeded {
		t.Fatalf("false tri-state lost: %v", loaded.LipMatchNeeded)
	}
}
