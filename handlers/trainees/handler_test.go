package trainees

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

	"github.com/DATA-DOG/go-sqlmock"
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

// withOrg injects the organization the way OrgScoped does, without the JWT
// and database round trips.
func withOrg(r *gin.Engine) *gin.Engine {
	r.Use(func(c *gin.Context) {
		c.Set("organization", &models.Organization{ID: orgID, Name: "Iron Temple", IsActive: true})
		c.Next()
	})
	return r
}

func TestCreateTrainee_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "trainees" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("323e4567-e89b-12d3-a456-426614174000"))
	mock.ExpectCommit()

	r := withOrg(testutils.SetupTestRouter())
	r.POST("/trainees", CreateTrainee)

	traineeData := map[string]interface{}{
		"firstName": "Yassine",
		"lastName":  "El Amrani",
		"category":  "adults",
		"phone":     "0612345678",
	}
	jsonData, _ := json.Marshal(traineeData)

	req, _ := http.NewRequest(http.MethodPost, "/trainees", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Yassine", respBody["firstName"])
	assert.Equal(t, orgID, respBody["organizationId"])
	assert.Equal(t, true, respBody["isActive"])
}

func TestCreateTrainee_MissingFirstName(t *testing.T) {
	r := withOrg(testutils.SetupTestRouter())
	r.POST("/trainees", CreateTrainee)

	traineeData := map[string]interface{}{
		"lastName": "El Amrani",
	}
	jsonData, _ := json.Marshal(traineeData)

	req, _ := http.NewRequest(http.MethodPost, "/trainees", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "Field validation for 'FirstName' failed")
}

func TestListTrainees_FiltersByCategory(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	rows := mock.NewRows([]string{"id", "organization_id", "first_name", "last_name", "category", "is_active", "started_day"}).
		AddRow("t1", orgID, "Yassine", "El Amrani", "adults", true, time.Now()).
		AddRow("t2", orgID, "Omar", "Benali", "adults", true, time.Now())
	mock.ExpectQuery(`SELECT (.+) FROM "trainees" WHERE organization_id = (.+) AND category = (.+) ORDER BY started_day DESC`).
		WillReturnRows(rows)

	r := withOrg(testutils.SetupTestRouter())
	r.GET("/trainees", ListTrainees)

	req, _ := http.NewRequest(http.MethodGet, "/trainees?category=adults", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody []map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Len(t, respBody, 2)
	assert.Equal(t, "adults", respBody[0]["category"])
}

func TestGetTrainee_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "trainees" WHERE id = (.+)`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := withOrg(testutils.SetupTestRouter())
	r.GET("/trainees/:id", GetTrainee)

	req, _ := http.NewRequest(http.MethodGet, "/trainees/t-missing", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Trainee not found", respBody["error"])
}

func TestBulkDeactivateTrainees_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "trainees" SET`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	r := withOrg(testutils.SetupTestRouter())
	r.POST("/trainees/bulk-deactivate", BulkDeactivateTrainees)

	body, _ := json.Marshal(map[string][]string{"ids": {"t1", "t2", "t3"}})

	req, _ := http.NewRequest(http.MethodPost, "/trainees/bulk-deactivate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, float64(3), respBody["deactivated"])
}

func TestBulkDeactivateTrainees_MissingIDs(t *testing.T) {
	r := withOrg(testutils.SetupTestRouter())
	r.POST("/trainees/bulk-deactivate", BulkDeactivateTrainees)

	req, _ := http.NewRequest(http.MethodPost, "/trainees/bulk-deactivate", bytes.NewBuffer([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
