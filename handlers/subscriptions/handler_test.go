package subscriptions

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"academy-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

const orgID = "123e4567-e89b-12d3-a456-426614174000"

func orgRows(mock sqlmock.Sqlmock, endDate *time.Time) *sqlmock.Rows {
	rows := mock.NewRows([]string{"id", "name", "slug", "subscription_status", "subscription_end_date", "grace_period_days", "is_active"})
	rows.AddRow(orgID, "Iron Temple", "iron-temple", "trial", endDate, 7, true)
	return rows
}

func TestRecordSubscriptionPayment_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "organizations" WHERE id = (.+)`).
		WillReturnRows(orgRows(mock, nil))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "subscription_payments" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("223e4567-e89b-12d3-a456-426614174000"))
	mock.ExpectExec(`UPDATE "organizations" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/admin/organizations/:id/subscription-payments", RecordSubscriptionPayment)

	paymentData := map[string]interface{}{
		"amount":         500,
		"durationMonths": 3,
		"paymentMethod":  "transfer",
	}
	jsonData, _ := json.Marshal(paymentData)

	req, _ := http.NewRequest(http.MethodPost, "/admin/organizations/"+orgID+"/subscription-payments", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, float64(500), respBody["amount"])
	assert.Equal(t, float64(3), respBody["durationMonths"])
	assert.Equal(t, "transfer", respBody["paymentMethod"])
	assert.NotEmpty(t, respBody["subscriptionStart"])
	assert.NotEmpty(t, respBody["subscriptionEnd"])
}

func TestRecordSubscriptionPayment_MalformedID(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/admin/organizations/:id/subscription-payments", RecordSubscriptionPayment)

	req, _ := http.NewRequest(http.MethodPost, "/admin/organizations/not-a-uuid/subscription-payments", bytes.NewBuffer([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invalid organization ID", respBody["error"])
}

func TestRecordSubscriptionPayment_OrganizationNotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "organizations" WHERE id = (.+)`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.POST("/admin/organizations/:id/subscription-payments", RecordSubscriptionPayment)

	req, _ := http.NewRequest(http.MethodPost, "/admin/organizations/"+orgID+"/subscription-payments", bytes.NewBuffer([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Organization not found", respBody["error"])
}

func TestRecordSubscriptionPayment_InvalidDuration(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "organizations" WHERE id = (.+)`).
		WillReturnRows(orgRows(mock, nil))

	r := testutils.SetupTestRouter()
	r.POST("/admin/organizations/:id/subscription-payments", RecordSubscriptionPayment)

	paymentData := map[string]interface{}{
		"amount":         500,
		"durationMonths": -1,
	}
	jsonData, _ := json.Marshal(paymentData)

	req, _ := http.NewRequest(http.MethodPost, "/admin/organizations/"+orgID+"/subscription-payments", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "duration must be at least one month", respBody["error"])
}

func TestRecordSubscriptionPayment_InvalidAmount(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "organizations" WHERE id = (.+)`).
		WillReturnRows(orgRows(mock, nil))

	r := testutils.SetupTestRouter()
	r.POST("/admin/organizations/:id/subscription-payments", RecordSubscriptionPayment)

	paymentData := map[string]interface{}{
		"amount":         -50,
		"durationMonths": 1,
	}
	jsonData, _ := json.Marshal(paymentData)

	req, _ := http.NewRequest(http.MethodPost, "/admin/organizations/"+orgID+"/subscription-payments", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "amount must be positive", respBody["error"])
}

func TestListSubscriptionPayments_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "organizations" WHERE id = (.+)`).
		WillReturnRows(orgRows(mock, nil))

	paymentRows := mock.NewRows([]string{"id", "organization_id", "amount", "duration_months", "payment_method"}).
		AddRow("p2", orgID, 500.0, 1, "cash").
		AddRow("p1", orgID, 1000.0, 3, "transfer")
	mock.ExpectQuery(`SELECT (.+) FROM "subscription_payments" WHERE organization_id = (.+) ORDER BY payment_date DESC`).
		WillReturnRows(paymentRows)

	r := testutils.SetupTestRouter()
	r.GET("/admin/organizations/:id/subscription-payments", ListSubscriptionPayments)

	req, _ := http.NewRequest(http.MethodGet, "/admin/organizations/"+orgID+"/subscription-payments", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody []map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Len(t, respBody, 2)
	assert.Equal(t, float64(500), respBody[0]["amount"])
}

func TestCheckOrganizationStatus_DemotesExpiredTenant(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	end := time.Now().UTC().AddDate(0, 0, -30)
	rows := mock.NewRows([]string{"id", "name", "slug", "subscription_status", "subscription_end_date", "grace_period_days", "is_active"}).
		AddRow(orgID, "Iron Temple", "iron-temple", "active", end, 7, true)
	mock.ExpectQuery(`SELECT (.+) FROM "organizations" WHERE id = (.+)`).
		WillReturnRows(rows)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "organizations" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/admin/organizations/:id/check-status", CheckOrganizationStatus)

	req, _ := http.NewRequest(http.MethodPost, "/admin/organizations/"+orgID+"/check-status", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	org := respBody["organization"].(map[string]interface{})
	assert.Equal(t, "expired", org["subscriptionStatus"])
	assert.Equal(t, false, org["isActive"])
	status := respBody["status"].(map[string]interface{})
	assert.Equal(t, "danger", status["class"])
}

func TestCheckOrganizationStatus_ActiveTenantUntouched(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	end := time.Now().UTC().AddDate(0, 0, 90)
	rows := mock.NewRows([]string{"id", "name", "slug", "subscription_status", "subscription_end_date", "grace_period_days", "is_active"}).
		AddRow(orgID, "Iron Temple", "iron-temple", "active", end, 7, true)
	mock.ExpectQuery(`SELECT (.+) FROM "organizations" WHERE id = (.+)`).
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	r.POST("/admin/organizations/:id/check-status", CheckOrganizationStatus)

	req, _ := http.NewRequest(http.MethodPost, "/admin/organizations/"+orgID+"/check-status", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	org := respBody["organization"].(map[string]interface{})
	assert.Equal(t, "active", org["subscriptionStatus"])
	assert.Equal(t, true, org["isActive"])
	status := respBody["status"].(map[string]interface{})
	assert.Equal(t, "success", status["class"])
}
