package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/insuredesk/insure-backend/internal/admin"
	"github.com/insuredesk/insure-backend/internal/config"
	"github.com/insuredesk/insure-backend/internal/db"
	"github.com/insuredesk/insure-backend/internal/intake"
	"github.com/insuredesk/insure-backend/internal/session"
	"github.com/insuredesk/insure-backend/pkg/client"
	"github.com/joho/godotenv"
)

// dbAvailable tracks whether the database connection was established.
var dbAvailable bool

// testServer is the shared httptest server for all integration tests.
var testServer *httptest.Server

// testAdmin is the credential seeded for this run.
var testAdmin config.AdminConfig

func TestMain(m *testing.M) {
	_ = godotenv.Load("../../.env.local")

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		// No database available — run only the unit tests.
		os.Exit(m.Run())
	}

	db.Connect(config.DatabaseConfig{DSN: databaseURL})
	dbAvailable = true

	intake.Init()

	// Unique username per run so parallel CI jobs don't collide.
	testAdmin = config.AdminConfig{
		Username: fmt.Sprintf("testadmin_%s", uuid.New().String()[:8]),
		Password: "integration-secret",
	}
	admin.Init(testAdmin)

	applications := intake.NewStore()
	sessions := session.NewMemoryStore()

	h := &admin.Handler{
		Credentials:  admin.NewCredentialStore(),
		Verifier:     admin.VerifierFor(testAdmin),
		Sessions:     sessions,
		Applications: applications,
		Cookie:       admin.CookieConfig{Name: "insure.sid", TTL: time.Hour},
	}

	// Mirror the production router in main.go.
	r := chi.NewRouter()
	r.Post("/apply", intake.NewHandler(applications).Apply)
	r.Mount("/admin", admin.SetupRoutes(h))

	testServer = httptest.NewServer(r)

	code := m.Run()

	testServer.Close()
	_ = db.DB.Exec("DELETE FROM insure.admin_credentials WHERE username = ?", testAdmin.Username).Error
	os.Exit(code)
}

// authedClient logs in and returns an http client carrying the session cookie.
func authedClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	httpClient := &http.Client{Jar: jar}

	body, _ := json.Marshal(map[string]string{
		"username": testAdmin.Username,
		"password": testAdmin.Password,
	})
	resp, err := httpClient.Post(testServer.URL+"/admin/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}
	return httpClient
}

// submitApplication inserts one row through the live /apply endpoint and
// registers cleanup for it. The email carries a unique marker.
func submitApplication(t *testing.T, name, email string) uint {
	t.Helper()

	c := client.New(testServer.URL)
	id, err := c.Submit(context.Background(), client.Application{
		Name:        name,
		Phone:       "555-0100",
		Email:       email,
		VehicleType: "car",
		Make:        "Honda",
		Model:       "Civic",
		Year:        "2022",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.DB.Exec("DELETE FROM insure.applications WHERE id = ?", id).Error
	})
	return id
}

func TestIntegration_ApplyPersistsRow(t *testing.T) {
	if !dbAvailable {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	email := fmt.Sprintf("%s@integration.test", uuid.NewString()[:8])
	id := submitApplication(t, "Integration Applicant", email)
	if id == 0 {
		t.Fatal("expected a non-zero identifier")
	}

	var got intake.Application
	if err := db.DB.First(&got, "id = ?", id).Error; err != nil {
		t.Fatalf("row not found: %v", err)
	}
	if got.Email != email {
		t.Errorf("email = %q, want %q", got.Email, email)
	}
	if got.RegistrationNumber != nil {
		t.Error("expected registration number stored as NULL")
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected the store to assign created_at")
	}
}

func TestIntegration_LoginCheckDataLogout(t *testing.T) {
	if !dbAvailable {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	httpClient := authedClient(t)

	check, err := httpClient.Get(testServer.URL + "/admin/check")
	if err != nil {
		t.Fatal(err)
	}
	check.Body.Close()
	if check.StatusCode != http.StatusOK {
		t.Errorf("check after login: expected 200, got %d", check.StatusCode)
	}

	data, err := httpClient.Get(testServer.URL + "/admin/data")
	if err != nil {
		t.Fatal(err)
	}
	data.Body.Close()
	if data.StatusCode != http.StatusOK {
		t.Errorf("data while authenticated: expected 200, got %d", data.StatusCode)
	}

	logout, err := httpClient.Get(testServer.URL + "/admin/logout")
	if err != nil {
		t.Fatal(err)
	}
	logout.Body.Close()
	if logout.StatusCode != http.StatusOK {
		t.Errorf("logout: expected 200, got %d", logout.StatusCode)
	}

	after, err := httpClient.Get(testServer.URL + "/admin/data")
	if err != nil {
		t.Fatal(err)
	}
	after.Body.Close()
	if after.StatusCode != http.StatusUnauthorized {
		t.Errorf("data after logout: expected 401, got %d", after.StatusCode)
	}
}

func TestIntegration_DataOrderedNewestFirst(t *testing.T) {
	if !dbAvailable {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	marker := uuid.NewString()[:8]
	var ids []uint
	for _, name := range []string{"A", "B", "C"} {
		ids = append(ids, submitApplication(t, name, fmt.Sprintf("%s-%s@order.test", marker, name)))
		time.Sleep(10 * time.Millisecond) // distinct created_at
	}

	httpClient := authedClient(t)
	resp, err := httpClient.Get(testServer.URL + "/admin/data")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var rows []intake.Application
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatal(err)
	}

	// Find our three rows; they must appear as C, B, A.
	var seen []uint
	for _, row := range rows {
		for _, id := range ids {
			if row.ID == id {
				seen = append(seen, row.ID)
			}
		}
	}
	if len(seen) != 3 {
		t.Fatalf("expected to find all 3 rows, found %d", len(seen))
	}
	if seen[0] != ids[2] || seen[1] != ids[1] || seen[2] != ids[0] {
		t.Errorf("expected order [C, B, A] = %v, got %v", []uint{ids[2], ids[1], ids[0]}, seen)
	}
}

func TestIntegration_ConcurrentSubmissionsGetDistinctIDs(t *testing.T) {
	if !dbAvailable {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	const n = 10
	marker := uuid.NewString()[:8]

	var wg sync.WaitGroup
	idCh := make(chan uint, n)
	errCh := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := client.New(testServer.URL)
			id, err := c.Submit(context.Background(), client.Application{
				Name:        fmt.Sprintf("Concurrent %d", i),
				Phone:       "555-0200",
				Email:       fmt.Sprintf("%s-%d@concurrent.test", marker, i),
				VehicleType: "bike",
				Make:        "Yamaha",
				Model:       "MT-07",
				Year:        "2023",
			})
			if err != nil {
				errCh <- err
				return
			}
			idCh <- id
		}(i)
	}
	wg.Wait()
	close(idCh)
	close(errCh)

	for err := range errCh {
		t.Fatalf("concurrent submit failed: %v", err)
	}

	seen := make(map[uint]bool)
	for id := range idCh {
		if seen[id] {
			t.Errorf("duplicate identifier %d", id)
		}
		seen[id] = true
		t.Cleanup(func() {
			_ = db.DB.Exec("DELETE FROM insure.applications WHERE id = ?", id).Error
		})
	}
	if len(seen) != n {
		t.Errorf("expected %d distinct identifiers, got %d", n, len(seen))
	}

	var count int64
	if err := db.DB.Model(&intake.Application{}).
		Where("email LIKE ?", marker+"-%").Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != n {
		t.Errorf("expected %d persisted rows, got %d", n, count)
	}
}
