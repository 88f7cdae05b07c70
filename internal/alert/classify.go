package alert

import (
	"fmt"
	"sort"
	"time"
)

// OwnerKind identifies which fleet entity a document belongs to.
type OwnerKind string

const (
	KindCompany OwnerKind = "company"
	KindDriver  OwnerKind = "driver"
	KindVehicle OwnerKind = "vehicle"
)

// Status is the urgency classification of a single document.
type Status string

const (
	StatusExpired     Status = "expired"
	StatusApproaching Status = "approaching"
	StatusOK          Status = "ok"
)

// DefaultLeadTimeDays applies when a category has no configured threshold.
const DefaultLeadTimeDays = 30

// Document is the classifier's flattened view of a stored document record,
// already joined with its owner.
type Document struct {
	Kind        OwnerKind
	Name        string // document-type label, uppercase
	DueDate     time.Time
	OwnerName   string // legal name, driver name or plate
	CompanyID   uint
	CompanyName string
}

// Item is one classified dashboard entry.
type Item struct {
	Description string    `json:"description"`
	Kind        OwnerKind `json:"kind"`
	OwnerName   string    `json:"owner_name"`
	CompanyID   uint      `json:"company_id"`
	CompanyName string    `json:"company_name"`
	Category    string    `json:"category"`
	DueDate     time.Time `json:"due_date"`
	DaysLeft    int       `json:"days_left"`
	Status      Status    `json:"status"`
}

// Classify computes the urgency of every document against the per-category
// thresholds and returns the items sorted most-urgent first (ascending
// days-left, ties keep input order).
func Classify(docs []Document, thresholds map[string]int, today time.Time) []Item {
	items := make([]Item, 0, len(docs))
	for _, doc := range docs {
		category := Canonicalize(doc.Name)
		threshold, ok := thresholds[category]
		if !ok {
			threshold = DefaultLeadTimeDays
		}

		daysLeft := daysBetween(today, doc.DueDate)
		status := StatusOK
		switch {
		case daysLeft < 0:
			status = StatusExpired
		case daysLeft <= threshold:
			status = StatusApproaching
		}

		items = append(items, Item{
			Description: describe(doc),
			Kind:        doc.Kind,
			OwnerName:   doc.OwnerName,
			CompanyID:   doc.CompanyID,
			CompanyName: doc.CompanyName,
			Category:    category,
			DueDate:     doc.DueDate,
			DaysLeft:    daysLeft,
			Status:      status,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DaysLeft < items[j].DaysLeft
	})
	return items
}

func describe(doc Document) string {
	switch doc.Kind {
	case KindDriver:
		return fmt.Sprintf("%s de %s", doc.Name, doc.OwnerName)
	case KindVehicle:
		return fmt.Sprintf("%s - %s", doc.Name, doc.OwnerName)
	default:
		return doc.Name
	}
}

// daysBetween returns whole days between two instants, comparing calendar
// dates only. Negative when due precedes today.
func daysBetween(today, due time.Time) int {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(t).Hours() / 24)
}
