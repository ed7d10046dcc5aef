package payments

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

	"academy-backend/models"
	"academy-backend/testutils"

	"github.com/gin-gonic/gin"
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

func withOrg(r *gin.Engine) *gin.Engine {
	r.Use(func(c *gin.Context) {
		c.Set("organization", &models.Organization{ID: orgID, Name: "Iron Temple", IsActive: true})
		c.Next()
	})
	return r
}

func TestCreatePayment_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	traineeRows := mock.NewRows([]string{"id", "organization_id", "first_name", "last_name"}).
		AddRow("t1", orgID, "Yassine", "El Amrani")
	mock.ExpectQuery(`SELECT (.+) FROM "trainees" WHERE id = (.+)`).
		WillReturnRows(traineeRows)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "payments" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("423e4567-e89b-12d3-a456-426614174000"))
	mock.ExpectCommit()

	r := withOrg(testutils.SetupTestRouter())
	r.POST("/payments", CreatePayment)

	paymentData := map[string]interface{}{
		"traineeId": "t1",
		"category":  "month",
		"amount":    200,
	}
	jsonData, _ := json.Marshal(paymentData)

	req, _ := http.NewRequest(http.MethodPost, "/payments", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "month", respBody["category"])
	assert.Equal(t, float64(200), respBody["amount"])
	assert.Equal(t, orgID, respBody["organizationId"])
}

func TestCreatePayment_InvalidCategory(t *testing.T) {
	r := withOrg(testutils.SetupTestRouter())
	r.POST("/payments", CreatePayment)

	paymentData := map[string]interface{}{
		"traineeId": "t1",
		"category":  "weekly",
		"amount":    200,
	}
	jsonData, _ := json.Marshal(paymentData)

	req, _ := http.NewRequest(http.MethodPost, "/payments", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "invalid payment category", respBody["error"])
}

func TestCreatePayment_NonPositiveAmount(t *testing.T) {
	r := withOrg(testutils.SetupTestRouter())
	r.POST("/payments", CreatePayment)

	paymentData := map[string]interface{}{
		"traineeId": "t1",
		"category":  "month",
		"amount":    -10,
	}
	jsonData, _ := json.Marshal(paymentData)

	req, _ := http.NewRequest(http.MethodPost, "/payments", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "amount must be positive", respBody["error"])
}

func TestCreatePayment_TraineeFromAnotherOrganization(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "trainees" WHERE id = (.+)`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := withOrg(testutils.SetupTestRouter())
	r.POST("/payments", CreatePayment)

	paymentData := map[string]interface{}{
		"traineeId": "t-foreign",
		"category":  "month",
		"amount":    200,
	}
	jsonData, _ := json.Marshal(paymentData)

	req, _ := http.NewRequest(http.MethodPost, "/payments", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestMonthGrid_MarksPaidMonths(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	traineeRows := mock.NewRows([]string{"id", "organization_id", "first_name", "last_name"}).
		AddRow("t1", orgID, "Yassine", "El Amrani")
	mock.ExpectQuery(`SELECT (.+) FROM "trainees" WHERE id = (.+)`).
		WillReturnRows(traineeRows)

	paymentRows := mock.NewRows([]string{"id", "trainee_id", "category", "payment_date"}).
		AddRow("p1", "t1", "month", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)).
		AddRow("p2", "t1", "month", time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC))
	mock.ExpectQuery(`SELECT (.+) FROM "payments" WHERE trainee_id = (.+)`).
		WillReturnRows(paymentRows)

	r := withOrg(testutils.SetupTestRouter())
	r.GET("/trainees/:id/month-grid", MonthGrid)

	req, _ := http.NewRequest(http.MethodGet, "/trainees/t1/month-grid?year=2025", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var grid []struct {
		Month  int    `json:"month"`
		Status string `json:"status"`
	}
	json.Unmarshal(resp.Body.Bytes(), &grid)

	assert.Len(t, grid, 12)
	assert.Equal(t, "paid", grid[0].Status)
	assert.Equal(t, "unpaid", grid[1].Status)
	assert.Equal(t, "paid", grid[2].Status)
	assert.Equal(t, "unpaid", grid[11].Status)
}
