// Package reports serves the dashboard and financial report endpoints. These
// are the read paths over the obligation engine: trainee payments are always
// fetched in one bulk query, indexed in memory, then evaluated per trainee.
package reports

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"academy-backend/db"
	"academy-backend/internal/billing"
	"academy-backend/internal/cache"
	"academy-backend/middleware"
	"academy-backend/models"
	"academy-backend/utils"

	"github.com/gin-gonic/gin"
)

const reportTTL = 5 * time.Minute

// loadPaymentIndex bulk-fetches every payment of the organization and builds
// the (trainee, category) → most recent payment index. One query regardless
// of roster size.
func loadPaymentIndex(orgID string) (*billing.PaymentIndex, error) {
	var payments []models.Payment
	if err := db.DB.Where("organization_id = ?", orgID).
		Order("payment_date DESC").Find(&payments).Error; err != nil {
		return nil, err
	}

	records := make([]billing.PaymentRecord, 0, len(payments))
	for _, p := range payments {
		cat, err := billing.ParseCategory(p.Category)
		if err != nil {
			// unknown category rows are skipped rather than poisoning the report
			continue
		}
		records = append(records, billing.PaymentRecord{
			ID:        p.ID,
			TraineeID: p.TraineeID,
			Category:  cat,
			Date:      p.PaymentDate,
		})
	}
	return billing.NewPaymentIndex(records), nil
}

type unpaidEntry struct {
	TraineeID       string     `json:"traineeId"`
	TraineeName     string     `json:"traineeName"`
	LastPaymentDate *time.Time `json:"lastPaymentDate"`
}

// Dashboard returns the landing-page data: unpaid trainees per category,
// today's payments and the subscription badge
// @Summary Dashboard
// @Description Unpaid trainees per payment category, payments recorded today and the organization's subscription badge
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /dashboard [get]
func Dashboard(c *gin.Context) {
	org := middleware.CurrentOrg(c)
	today := time.Now()

	key := cache.Key(org.ID, "dashboard", billing.DateOnly(today).Format("2006-01-02"))
	if cached, ok := cache.Reports().Get(key); ok {
		c.Data(http.StatusOK, "application/json", cached)
		return
	}

	var traineeList []models.Trainee
	if err := db.DB.Where("organization_id = ? AND is_active = ?", org.ID, true).
		Order("started_day DESC").Find(&traineeList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	idx, err := loadPaymentIndex(org.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ids := make([]string, 0, len(traineeList))
	names := make(map[string]string, len(traineeList))
	for i := range traineeList {
		ids = append(ids, traineeList[i].ID)
		names[traineeList[i].ID] = traineeList[i].FullName()
	}

	paymentStatus := make(map[string]gin.H, 4)
	for _, category := range billing.AllCategories() {
		unpaid := billing.UnpaidList(ids, idx, category, today)
		entries := make([]unpaidEntry, 0, len(unpaid))
		for _, u := range unpaid {
			entries = append(entries, unpaidEntry{
				TraineeID:       u.TraineeID,
				TraineeName:     names[u.TraineeID],
				LastPaymentDate: u.LastPaymentDate,
			})
		}
		paymentStatus[string(category)] = gin.H{
			"unpaidTrainees": entries,
			"totalUnpaid":    len(entries),
		}
	}

	var paidToday []models.Payment
	if err := db.DB.Where("organization_id = ? AND payment_date = ?", org.ID, billing.DateOnly(today)).
		Preload("Trainee").Find(&paidToday).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	body := gin.H{
		"paymentStatus":      paymentStatus,
		"paidToday":          paidToday,
		"subscriptionStatus": org.StatusDisplay(today),
		"totalTrainees":      len(traineeList),
	}

	if raw, err := json.Marshal(body); err == nil {
		cache.Reports().Set(org.ID, key, raw, reportTTL)
	}
	c.JSON(http.StatusOK, body)
}

// UnpaidTrainees lists trainees whose obligation in one category is due
// @Summary Unpaid trainees for a category
// @Description Trainees whose obligation in the given category is due as of today, in roster order
// @Tags reports
// @Produce json
// @Param category query string true "Payment category (month, subscription, assurance, jawaz)"
// @Param trainee_category query string false "Trainee category filter"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "error: Invalid category"
// @Router /reports/unpaid [get]
func UnpaidTrainees(c *gin.Context) {
	org := middleware.CurrentOrg(c)
	today := time.Now()

	category, err := billing.ParseCategory(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := db.DB.Where("organization_id = ? AND is_active = ?", org.ID, true)
	if tc := c.Query("trainee_category"); tc != "" && tc != "all" {
		query = query.Where("category = ?", tc)
	}

	var traineeList []models.Trainee
	if err := query.Order("started_day DESC").Find(&traineeList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	idx, err := loadPaymentIndex(org.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ids := make([]string, 0, len(traineeList))
	names := make(map[string]string, len(traineeList))
	for i := range traineeList {
		ids = append(ids, traineeList[i].ID)
		names[traineeList[i].ID] = traineeList[i].FullName()
	}

	unpaid := billing.UnpaidList(ids, idx, category, today)
	entries := make([]unpaidEntry, 0, len(unpaid))
	for _, u := range unpaid {
		entries = append(entries, unpaidEntry{
			TraineeID:       u.TraineeID,
			TraineeName:     names[u.TraineeID],
			LastPaymentDate: u.LastPaymentDate,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"category":       category,
		"unpaidTrainees": entries,
		"totalUnpaid":    len(entries),
	})
}

// UnpaidForMonth lists trainees with no "month" payment inside one calendar
// month
// @Summary Unpaid trainees for a calendar month
// @Description Trainees with no monthly payment recorded inside the given month window
// @Tags reports
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Param trainee_category query string false "Trainee category filter"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "error: Invalid year or month"
// @Router /reports/unpaid-month [get]
func UnpaidForMonth(c *gin.Context) {
	org := middleware.CurrentOrg(c)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	query := db.DB.Where("organization_id = ? AND is_active = ?", org.ID, true)
	if tc := c.Query("trainee_category"); tc != "" && tc != "all" {
		query = query.Where("category = ?", tc)
	}

	var traineeList []models.Trainee
	if err := query.Order("started_day DESC").Find(&traineeList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// one bulk fetch of every monthly payment, split into the in-window set
	// and the per-trainee latest date
	var monthlyPayments []models.Payment
	if err := db.DB.Where("organization_id = ? AND category = ?", org.ID, billing.CategoryMonth).
		Order("payment_date DESC").Find(&monthlyPayments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	paidInWindow := make(map[string]bool)
	lastPayment := make(map[string]time.Time)
	for _, p := range monthlyPayments {
		d := billing.DateOnly(p.PaymentDate)
		if !d.Before(monthStart) && !d.After(monthEnd) {
			paidInWindow[p.TraineeID] = true
		}
		if cur, ok := lastPayment[p.TraineeID]; !ok || d.After(cur) {
			lastPayment[p.TraineeID] = d
		}
	}

	entries := make([]unpaidEntry, 0)
	for i := range traineeList {
		t := &traineeList[i]
		if paidInWindow[t.ID] {
			continue
		}
		entry := unpaidEntry{TraineeID: t.ID, TraineeName: t.FullName()}
		if d, ok := lastPayment[t.ID]; ok {
			date := d
			entry.LastPaymentDate = &date
		}
		entries = append(entries, entry)
	}

	c.JSON(http.StatusOK, gin.H{
		"year":           year,
		"month":          month,
		"unpaidTrainees": entries,
		"totalUnpaid":    len(entries),
	})
}

// FinancialReport is the ranged profit and loss summary.
type FinancialReport struct {
	Start            string               `json:"start"`
	End              string               `json:"end"`
	PaymentsTotal    float64              `json:"paymentsTotal"`
	ExtraIncomeTotal float64              `json:"extraIncomeTotal"`
	EventProfit      float64              `json:"eventProfit"`
	EventCosts       float64              `json:"eventCosts"`
	AddedCosts       float64              `json:"addedCosts"`
	RentCount        int                  `json:"rentCount"`
	RentTotal        float64              `json:"rentTotal"`
	StaffLines       []billing.SalaryLine `json:"staffLines"`
	StaffTotal       float64              `json:"staffTotal"`
	TotalCosts       float64              `json:"totalCosts"`
	Profit           float64              `json:"profit"`
	NetProfit        float64              `json:"netProfit"`
}

// Financials returns the financial report over a date range
// @Summary Financial report
// @Description Profit and loss over a date range. Rent and salary figures use the same period counting as the due-date engine. Results are cached for a few minutes per (organization, range).
// @Tags reports
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD, defaults to Jan 1 of this year)"
// @Param end query string false "Range end (YYYY-MM-DD, defaults to Dec 31 of this year)"
// @Security BearerAuth
// @Success 200 {object} FinancialReport
// @Failure 400 {object} map[string]string "error: Invalid date"
// @Router /reports/financials [get]
func Financials(c *gin.Context) {
	org := middleware.CurrentOrg(c)
	today := time.Now()

	yearStart := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)

	start, err := utils.ParseDateParam(c.Query("start"), yearStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date, expected YYYY-MM-DD"})
		return
	}
	end, err := utils.ParseDateParam(c.Query("end"), yearEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date, expected YYYY-MM-DD"})
		return
	}

	key := cache.Key(org.ID, "financial_report", start.Format("2006-01-02"), end.Format("2006-01-02"))
	if cached, ok := cache.Reports().Get(key); ok {
		c.Data(http.StatusOK, "application/json", cached)
		return
	}

	report := FinancialReport{
		Start: start.Format("2006-01-02"),
		End:   end.Format("2006-01-02"),
	}

	row := db.DB.Model(&models.Payment{}).
		Where("organization_id = ? AND payment_date BETWEEN ? AND ?", org.ID, start, end).
		Select("COALESCE(SUM(amount), 0)").Row()
	if err := row.Scan(&report.PaymentsTotal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	row = db.DB.Model(&models.ExtraIncome{}).
		Where("organization_id = ? AND date BETWEEN ? AND ?", org.ID, start, end).
		Select("COALESCE(SUM(amount), 0)").Row()
	if err := row.Scan(&report.ExtraIncomeTotal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	row = db.DB.Model(&models.Cost{}).
		Where("organization_id = ? AND date BETWEEN ? AND ?", org.ID, start, end).
		Select("COALESCE(SUM(amount), 0)").Row()
	if err := row.Scan(&report.AddedCosts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var eventList []models.Event
	if err := db.DB.Where("organization_id = ? AND date BETWEEN ? AND ?", org.ID, start, end).
		Find(&eventList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for i := range eventList {
		report.EventProfit += eventList[i].Profit()
		report.EventCosts += eventList[i].Costs
	}

	var rentAnchor time.Time
	if org.RentDueDate != nil {
		rentAnchor = *org.RentDueDate
	}
	report.RentCount, report.RentTotal = billing.RentTotals(rentAnchor, org.RentAmount, start, end, today)

	var staffList []models.Staff
	if err := db.DB.Where("organization_id = ?", org.ID).Find(&staffList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	anchors := make([]billing.SalaryAnchor, 0, len(staffList))
	for _, s := range staffList {
		anchors = append(anchors, billing.SalaryAnchor{
			StaffID: s.ID,
			Name:    s.Name,
			Started: s.Started,
			Salary:  s.Salary,
		})
	}
	report.StaffLines, report.StaffTotal = billing.SalaryTotals(anchors, start, end, today)

	report.TotalCosts = report.AddedCosts + report.EventCosts + report.RentTotal + report.StaffTotal
	report.Profit = report.PaymentsTotal + report.ExtraIncomeTotal + report.EventProfit
	report.NetProfit = report.Profit - report.TotalCosts

	if raw, err := json.Marshal(report); err == nil {
		cache.Reports().Set(org.ID, key, raw, reportTTL)
	}
	c.JSON(http.StatusOK, report)
}
