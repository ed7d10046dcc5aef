package billing

import "time"

// Category is a trainee payment category. Each category carries its cadence;
// "month" is the monthly training fee, the rest are yearly (federation
// membership, insurance, sport passport).
type Category string

const (
	CategoryMonth        Category = "month"
	CategorySubscription Category = "subscription"
	CategoryAssurance    Category = "assurance"
	CategoryJawaz        Category = "jawaz"
)

var categoryCadences = map[Category]struct {
	cadence   Cadence
	graceDays int
}{
	CategoryMonth:        {Monthly, 0},
	CategorySubscription: {Yearly, 0},
	CategoryAssurance:    {Yearly, 0},
	CategoryJawaz:        {Yearly, 0},
}

func AllCategories() []Category {
	return []Category{CategoryMonth, CategorySubscription, CategoryAssurance, CategoryJawaz}
}

func ParseCategory(s string) (Category, error) {
	cat := Category(s)
	if _, ok := categoryCadences[cat]; !ok {
		return "", ErrInvalidCategory
	}
	return cat, nil
}

func (c Category) Cadence() Cadence {
	return categoryCadences[c].cadence
}

func (c Category) GraceDays() int {
	return categoryCadences[c].graceDays
}

// IsUnpaid reports whether an obligation is due as of today. A nil last
// payment means never paid, which always counts as unpaid. Due today counts
// as unpaid.
func IsUnpaid(lastPayment *time.Time, cadence Cadence, graceDays int, today time.Time) bool {
	if lastPayment == nil {
		return true
	}
	due := NextDueDate(*lastPayment, cadence, graceDays)
	return DaysUntil(due, today) <= 0
}

// PaymentRecord is the slice of a stored payment the obligation engine needs.
type PaymentRecord struct {
	ID        string
	TraineeID string
	Category  Category
	Date      time.Time
}

// PaymentIndex maps (trainee, category) to the most recent payment. It is
// built once from a single bulk fetch so that evaluating a whole roster never
// issues one query per trainee.
type PaymentIndex struct {
	latest map[indexKey]PaymentRecord
}

type indexKey struct {
	traineeID string
	category  Category
}

// NewPaymentIndex indexes records by (trainee, category), keeping the most
// recent payment per key. Ties on the same date are broken by the highest ID
// so repeated evaluations always pick the same row.
func NewPaymentIndex(records []PaymentRecord) *PaymentIndex {
	idx := &PaymentIndex{latest: make(map[indexKey]PaymentRecord, len(records))}
	for _, rec := range records {
		rec.Date = DateOnly(rec.Date)
		key := indexKey{rec.TraineeID, rec.Category}
		cur, ok := idx.latest[key]
		if !ok || rec.Date.After(cur.Date) || (rec.Date.Equal(cur.Date) && rec.ID > cur.ID) {
			idx.latest[key] = rec
		}
	}
	return idx
}

// Latest returns the most recent payment date for a (trainee, category) pair.
func (idx *PaymentIndex) Latest(traineeID string, category Category) (time.Time, bool) {
	rec, ok := idx.latest[indexKey{traineeID, category}]
	if !ok {
		return time.Time{}, false
	}
	return rec.Date, true
}

// UnpaidTrainee is one roster entry whose obligation is currently due.
type UnpaidTrainee struct {
	TraineeID       string     `json:"traineeId"`
	LastPaymentDate *time.Time `json:"lastPaymentDate"`
}

// UnpaidList returns, in roster order, every trainee whose obligation in the
// given category is unpaid as of today.
func UnpaidList(traineeIDs []string, idx *PaymentIndex, category Category, today time.Time) []UnpaidTrainee {
	unpaid := make([]UnpaidTrainee, 0)
	for _, id := range traineeIDs {
		var last *time.Time
		if date, ok := idx.Latest(id, category); ok {
			d := date
			last = &d
		}
		if IsUnpaid(last, category.Cadence(), category.GraceDays(), today) {
			unpaid = append(unpaid, UnpaidTrainee{TraineeID: id, LastPaymentDate: last})
		}
	}
	return unpaid
}
