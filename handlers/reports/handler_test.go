package reports

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"academy-backend/models"
	"academy-backend/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

const orgID = "123e4567-e89b-12d3-a456-426614174000"

func withOrg(r *gin.Engine) *gin.Engine {
	r.Use(func(c *gin.Context) {
		c.Set("organization", &models.Organization{ID: orgID, Name: "Iron Temple", IsActive: true})
		c.Next()
	})
	return r
}

func TestUnpaidTrainees_InvalidCategory(t *testing.T) {
	r := withOrg(testutils.SetupTestRouter())
	r.GET("/reports/unpaid", UnpaidTrainees)

	req, _ := http.NewRequest(http.MethodGet, "/reports/unpaid?category=weekly", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "invalid payment category", respBody["error"])
}

func TestUnpaidTrainees_MixedRoster(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now().UTC()

	traineeRows := mock.NewRows([]string{"id", "organization_id", "first_name", "last_name", "is_active", "started_day"}).
		AddRow("t-current", orgID, "Yassine", "El Amrani", true, now.AddDate(0, -6, 0)).
		AddRow("t-overdue", orgID, "Omar", "Benali", true, now.AddDate(-1, 0, 0)).
		AddRow("t-never", orgID, "Karim", "Tazi", true, now.AddDate(-2, 0, 0))
	mock.ExpectQuery(`SELECT (.+) FROM "trainees" WHERE organization_id = (.+) ORDER BY started_day DESC`).
		WillReturnRows(traineeRows)

	// t-current paid 5 days ago, t-overdue paid 40 days ago, t-never has no row
	paymentRows := mock.NewRows([]string{"id", "organization_id", "trainee_id", "category", "amount", "payment_date"}).
		AddRow("p1", orgID, "t-current", "month", 200.0, now.AddDate(0, 0, -5)).
		AddRow("p2", orgID, "t-overdue", "month", 200.0, now.AddDate(0, 0, -40))
	mock.ExpectQuery(`SELECT (.+) FROM "payments" WHERE organization_id = (.+) ORDER BY payment_date DESC`).
		WillReturnRows(paymentRows)

	r := withOrg(testutils.SetupTestRouter())
	r.GET("/reports/unpaid", UnpaidTrainees)

	req, _ := http.NewRequest(http.MethodGet, "/reports/unpaid?category=month", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody struct {
		Category       string `json:"category"`
		TotalUnpaid    int    `json:"totalUnpaid"`
		UnpaidTrainees []struct {
			TraineeID       string  `json:"traineeId"`
			TraineeName     string  `json:"traineeName"`
			LastPaymentDate *string `json:"lastPaymentDate"`
		} `json:"unpaidTrainees"`
	}
	json.Unmarshal(resp.Body.Bytes(), &respBody)

	assert.Equal(t, "month", respBody.Category)
	assert.Equal(t, 2, respBody.TotalUnpaid)
	// roster order is preserved
	assert.Equal(t, "t-overdue", respBody.UnpaidTrainees[0].TraineeID)
	assert.Equal(t, "Omar Benali", respBody.UnpaidTrainees[0].TraineeName)
	assert.NotNil(t, respBody.UnpaidTrainees[0].LastPaymentDate)
	assert.Equal(t, "t-never", respBody.UnpaidTrainees[1].TraineeID)
	assert.Nil(t, respBody.UnpaidTrainees[1].LastPaymentDate)
}

func TestUnpaidForMonth_WindowOnly(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	traineeRows := mock.NewRows([]string{"id", "organization_id", "first_name", "last_name", "is_active", "started_day"}).
		AddRow("t1", orgID, "Yassine", "El Amrani", true, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).
		AddRow("t2", orgID, "Omar", "Benali", true, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	mock.ExpectQuery(`SELECT (.+) FROM "trainees" WHERE organization_id = (.+) ORDER BY started_day DESC`).
		WillReturnRows(traineeRows)

	// t1 paid inside June, t2 only in May
	paymentRows := mock.NewRows([]string{"id", "organization_id", "trainee_id", "category", "amount", "payment_date"}).
		AddRow("p1", orgID, "t1", "month", 200.0, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)).
		AddRow("p2", orgID, "t2", "month", 200.0, time.Date(2025, 5, 28, 0, 0, 0, 0, time.UTC))
	mock.ExpectQuery(`SELECT (.+) FROM "payments" WHERE organization_id = (.+) AND category = (.+) ORDER BY payment_date DESC`).
		WillReturnRows(paymentRows)

	r := withOrg(testutils.SetupTestRouter())
	r.GET("/reports/unpaid-month", UnpaidForMonth)

	req, _ := http.NewRequest(http.MethodGet, "/reports/unpaid-month?year=2025&month=6", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody struct {
		TotalUnpaid    int `json:"totalUnpaid"`
		UnpaidTrainees []struct {
			TraineeID       string  `json:"traineeId"`
			LastPaymentDate *string `json:"lastPaymentDate"`
		} `json:"unpaidTrainees"`
	}
	json.Unmarshal(resp.Body.Bytes(), &respBody)

	assert.Equal(t, 1, respBody.TotalUnpaid)
	assert.Equal(t, "t2", respBody.UnpaidTrainees[0].TraineeID)
	assert.NotNil(t, respBody.UnpaidTrainees[0].LastPaymentDate)
}

func TestUnpaidForMonth_InvalidMonth(t *testing.T) {
	r := withOrg(testutils.SetupTestRouter())
	r.GET("/reports/unpaid-month", UnpaidForMonth)

	req, _ := http.NewRequest(http.MethodGet, "/reports/unpaid-month?year=2025&month=13", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
