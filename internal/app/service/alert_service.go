package service

import (
	"strings"
	"time"

	"github.com/frotadocs/frotadocs-backend/internal/alert"
	"github.com/frotadocs/frotadocs-backend/internal/app/repository"
	"github.com/frotadocs/frotadocs-backend/pkg/logger"
)

// DashboardQuery narrows what the dashboard displays. Filters affect the
// item list only: the expired and approaching counters always describe the
// whole fleet, so hiding rows never hides risk.
type DashboardQuery struct {
	Kind        string
	Status      string
	Search      string
	CompanyID   uint
	HideExpired bool
}

type Dashboard struct {
	Items            []alert.Item `json:"items"`
	TotalCount       int          `json:"total_count"`
	ExpiredCount     int          `json:"expired_count"`
	ApproachingCount int          `json:"approaching_count"`
}

type AlertService interface {
	Dashboard(query DashboardQuery) (*Dashboard, error)
	Sweep() error
}

type alertService struct {
	documentRepo    repository.DocumentRepository
	alertConfigRepo repository.AlertConfigRepository
	now             func() time.Time
}

func NewAlertService(documentRepo repository.DocumentRepository, alertConfigRepo repository.AlertConfigRepository) AlertService {
	return &alertService{
		documentRepo:    documentRepo,
		alertConfigRepo: alertConfigRepo,
		now:             time.Now,
	}
}

func (s *alertService) Dashboard(query DashboardQuery) (*Dashboard, error) {
	docs, err := s.collect()
	if err != nil {
		return nil, err
	}

	thresholds, err := s.alertConfigRepo.Thresholds()
	if err != nil {
		return nil, err
	}

	items := alert.Classify(docs, thresholds, s.now())

	// Counters are computed before display filters on purpose.
	dashboard := &Dashboard{TotalCount: len(items)}
	for _, item := range items {
		switch item.Status {
		case alert.StatusExpired:
			dashboard.ExpiredCount++
		case alert.StatusApproaching:
			dashboard.ApproachingCount++
		}
	}

	dashboard.Items = filterItems(items, query)
	return dashboard, nil
}

// Sweep runs the full classification and logs fleet-wide totals. The
// scheduler calls it once a day so the log stream carries a baseline even
// when nobody opens the dashboard.
func (s *alertService) Sweep() error {
	dashboard, err := s.Dashboard(DashboardQuery{})
	if err != nil {
		logger.Error("Expiry sweep failed", err, nil)
		return err
	}

	logger.Info("Expiry sweep completed", map[string]interface{}{
		"total":       dashboard.TotalCount,
		"expired":     dashboard.ExpiredCount,
		"approaching": dashboard.ApproachingCount,
	})
	return nil
}

// collect flattens the three document tables into the classifier's input.
func (s *alertService) collect() ([]alert.Document, error) {
	var docs []alert.Document

	companyDocs, err := s.documentRepo.AllCompanyDocuments()
	if err != nil {
		return nil, err
	}
	for _, d := range companyDocs {
		docs = append(docs, alert.Document{
			Kind:        alert.KindCompany,
			Name:        d.Name,
			DueDate:     d.DueDate,
			OwnerName:   d.Company.LegalName,
			CompanyID:   d.CompanyID,
			CompanyName: d.Company.LegalName,
		})
	}

	driverDocs, err := s.documentRepo.AllDriverDocuments()
	if err != nil {
		return nil, err
	}
	for _, d := range driverDocs {
		docs = append(docs, alert.Document{
			Kind:        alert.KindDriver,
			Name:        d.Name,
			DueDate:     d.DueDate,
			OwnerName:   d.Driver.Name,
			CompanyID:   d.Driver.CompanyID,
			CompanyName: d.Driver.Company.LegalName,
		})
	}

	vehicleDocs, err := s.documentRepo.AllVehicleDocuments()
	if err != nil {
		return nil, err
	}
	for _, d := range vehicleDocs {
		docs = append(docs, alert.Document{
			Kind:        alert.KindVehicle,
			Name:        d.Name,
			DueDate:     d.DueDate,
			OwnerName:   d.Vehicle.Plate,
			CompanyID:   d.Vehicle.CompanyID,
			CompanyName: d.Vehicle.Company.LegalName,
		})
	}

	return docs, nil
}

func filterItems(items []alert.Item, query DashboardQuery) []alert.Item {
	search := strings.ToUpper(strings.TrimSpace(query.Search))

	filtered := make([]alert.Item, 0, len(items))
	for _, item := range items {
		if query.Kind != "" && string(item.Kind) != query.Kind {
			continue
		}
		if query.Status != "" && string(item.Status) != query.Status {
			continue
		}
		if query.CompanyID != 0 && item.CompanyID != query.CompanyID {
			continue
		}
		if query.HideExpired && item.Status == alert.StatusExpired {
			continue
		}
		if search != "" && !matchesSearch(item, search) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func matchesSearch(item alert.Item, needle string) bool {
	for _, field := range []string{item.Description, item.OwnerName, item.CompanyName, item.Category} {
		if strings.Contains(strings.ToUpper(field), needle) {
			return true
		}
	}
	return false
}
