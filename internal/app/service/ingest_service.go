package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/frotadocs/frotadocs-backend/internal/app/model"
	"github.com/frotadocs/frotadocs-backend/internal/app/repository"
	"github.com/frotadocs/frotadocs-backend/internal/ingest"
	"github.com/frotadocs/frotadocs-backend/pkg/docid"
	"github.com/frotadocs/frotadocs-backend/pkg/logger"
	"gorm.io/gorm"
)

// ErrBatchFailed wraps unexpected storage errors mid-batch. The whole
// transaction has been rolled back when it is returned.
var ErrBatchFailed = errors.New("batch processing failed")

// Required column sets per upload route. All columns must be present or the
// file is rejected wholesale before any row is read.
var (
	companyColumns  = []string{"razao_social", "cnpj"}
	driverColumns   = []string{"nome", "cpf", "cnpj_transportador"}
	vehicleColumns  = []string{"placa", "cnpj_transportador"}
	documentColumns = []string{"nome", "tipo_evento", "data_vencimento"}
)

// Report summarizes one reconciliation batch. Rows that were skipped for
// missing or malformed values are intentionally not counted: ingestion is
// best-effort at row level.
type Report struct {
	Created         int      `json:"created"`
	Updated         int      `json:"updated"`
	UnmatchedOwners []string `json:"unmatched_owners"`
	AmbiguousOwners []string `json:"ambiguous_owners"`
	AlreadyExists   []string `json:"already_exists"`
}

// IngestService reconciles uploaded spreadsheet rows against the stored
// fleet. Every import runs inside a single transaction: skipped and
// unmatched rows are partial success, unexpected storage errors abort and
// roll back the whole batch.
type IngestService interface {
	ImportCompanies(table *ingest.Table) (*Report, error)
	ImportDrivers(table *ingest.Table) (*Report, error)
	ImportVehicles(table *ingest.Table) (*Report, error)
	ImportCompanyDocuments(table *ingest.Table) (*Report, error)
	ImportDriverDocuments(table *ingest.Table) (*Report, error)
	ImportVehicleDocuments(table *ingest.Table) (*Report, error)
}

type ingestService struct {
	db *gorm.DB
}

func NewIngestService(db *gorm.DB) IngestService {
	return &ingestService{db: db}
}

// reportBuilder accumulates batch outcomes; the bucket sets dedupe repeated
// identifiers so one owner missing from ten rows is reported once.
type reportBuilder struct {
	created   int
	updated   int
	unmatched map[string]struct{}
	ambiguous map[string]struct{}
	exists    map[string]struct{}
}

func newReportBuilder() *reportBuilder {
	return &reportBuilder{
		unmatched: make(map[string]struct{}),
		ambiguous: make(map[string]struct{}),
		exists:    make(map[string]struct{}),
	}
}

func (b *reportBuilder) report() *Report {
	return &Report{
		Created:         b.created,
		Updated:         b.updated,
		UnmatchedOwners: sortedKeys(b.unmatched),
		AmbiguousOwners: sortedKeys(b.ambiguous),
		AlreadyExists:   sortedKeys(b.exists),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *ingestService) ImportCompanies(table *ingest.Table) (*Report, error) {
	if err := table.Require(companyColumns...); err != nil {
		return nil, err
	}

	b := newReportBuilder()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		companies := repository.NewCompanyRepository(tx)

		for i := 0; i < table.Len(); i++ {
			legalName := table.Value(i, "razao_social")
			rawCNPJ := table.Value(i, "cnpj")
			if legalName == "" || rawCNPJ == "" {
				continue
			}

			cnpj, err := docid.FormatCNPJ(rawCNPJ)
			if err != nil {
				continue // malformed identifier, best-effort skip
			}

			existing, err := companies.FindByCNPJ(cnpj)
			if err != nil {
				return err
			}
			if existing != nil {
				b.exists[cnpj] = struct{}{}
				continue
			}

			// Duplicate detection also runs on the normalized legal name:
			// two registrations under distinct CNPJs but the same name are
			// almost always the same company typed twice.
			nameTaken, err := companies.ExistsByLegalName(legalName)
			if err != nil {
				return err
			}
			if nameTaken {
				b.exists[strings.ToUpper(strings.TrimSpace(legalName))] = struct{}{}
				continue
			}

			company := &model.Company{LegalName: legalName, CNPJ: cnpj}
			if err := companies.Create(company); err != nil {
				return err
			}
			b.created++
		}
		return nil
	})
	if err != nil {
		return nil, s.abort("companies", err)
	}

	s.logReport("companies", b)
	return b.report(), nil
}

func (s *ingestService) ImportDrivers(table *ingest.Table) (*Report, error) {
	if err := table.Require(driverColumns...); err != nil {
		return nil, err
	}

	b := newReportBuilder()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		companies := repository.NewCompanyRepository(tx)
		drivers := repository.NewDriverRepository(tx)

		for i := 0; i < table.Len(); i++ {
			name := table.Value(i, "nome")
			rawCPF := table.Value(i, "cpf")
			rawCompanyCNPJ := table.Value(i, "cnpj_transportador")
			if name == "" || rawCPF == "" || rawCompanyCNPJ == "" {
				continue
			}

			companyCNPJ, err := docid.FormatCNPJ(rawCompanyCNPJ)
			if err != nil {
				continue
			}
			company, err := companies.FindByCNPJ(companyCNPJ)
			if err != nil {
				return err
			}
			if company == nil {
				b.unmatched[rawCompanyCNPJ] = struct{}{}
				continue
			}

			cpf, err := docid.FormatCPF(rawCPF)
			if err != nil {
				continue
			}
			existing, err := drivers.FindByCPF(cpf)
			if err != nil {
				return err
			}
			if existing != nil {
				continue // same driver re-sent, nothing to reconcile
			}

			driver := &model.Driver{
				Name:      name,
				CPF:       cpf,
				Operation: table.Value(i, "operacao"),
				CompanyID: company.ID,
			}
			if cnh := table.Value(i, "cnh"); cnh != "" {
				driver.CNH = &cnh
			}
			if err := drivers.Create(driver); err != nil {
				return err
			}
			b.created++
		}
		return nil
	})
	if err != nil {
		return nil, s.abort("drivers", err)
	}

	s.logReport("drivers", b)
	return b.report(), nil
}

func (s *ingestService) ImportVehicles(table *ingest.Table) (*Report, error) {
	if err := table.Require(vehicleColumns...); err != nil {
		return nil, err
	}

	b := newReportBuilder()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		companies := repository.NewCompanyRepository(tx)
		vehicles := repository.NewVehicleRepository(tx)

		for i := 0; i < table.Len(); i++ {
			rawPlate := table.Value(i, "placa")
			rawCompanyCNPJ := table.Value(i, "cnpj_transportador")
			if rawPlate == "" || rawCompanyCNPJ == "" {
				continue
			}

			companyCNPJ, err := docid.FormatCNPJ(rawCompanyCNPJ)
			if err != nil {
				continue
			}
			company, err := companies.FindByCNPJ(companyCNPJ)
			if err != nil {
				return err
			}
			if company == nil {
				b.unmatched[rawCompanyCNPJ] = struct{}{}
				continue
			}

			existing, err := vehicles.FindByPlate(rawPlate)
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}

			vehicle := &model.Vehicle{
				Plate:     rawPlate,
				Operation: table.Value(i, "operacao"),
				CompanyID: company.ID,
			}
			if err := vehicles.Create(vehicle); err != nil {
				return err
			}
			b.created++
		}
		return nil
	})
	if err != nil {
		return nil, s.abort("vehicles", err)
	}

	s.logReport("vehicles", b)
	return b.report(), nil
}

// upsertOutcome tells the generic document loop what the upsert did.
type upsertOutcome int

const (
	upsertUnchanged upsertOutcome = iota
	upsertCreated
	upsertUpdated
)

// documentTarget parameterizes the generic document reconciliation over the
// three owner kinds: how the owner column resolves to a stored entity, and
// how the (owner, label) pair is upserted. This replaces the per-kind
// branching of a naive implementation with explicit strategy values.
type documentTarget struct {
	kind    string
	resolve func(tx *gorm.DB, rawOwner string, b *reportBuilder) (uint, bool, error)
	upsert  func(tx *gorm.DB, ownerID uint, name string, due time.Time) (upsertOutcome, error)
}

func (s *ingestService) importDocuments(table *ingest.Table, target documentTarget) (*Report, error) {
	if err := table.Require(documentColumns...); err != nil {
		return nil, err
	}

	b := newReportBuilder()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < table.Len(); i++ {
			rawOwner := table.Value(i, "nome")
			label := table.Value(i, "tipo_evento")
			rawDue := table.Value(i, "data_vencimento")
			if rawOwner == "" || label == "" || rawDue == "" {
				continue
			}

			due, err := ingest.ParseDueDate(rawDue)
			if err != nil {
				continue // unparseable date, best-effort skip
			}

			ownerID, ok, err := target.resolve(tx, rawOwner, b)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}

			outcome, err := target.upsert(tx, ownerID, label, due)
			if err != nil {
				return err
			}
			switch outcome {
			case upsertCreated:
				b.created++
			case upsertUpdated:
				b.updated++
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.abort(target.kind+" documents", err)
	}

	s.logReport(target.kind+" documents", b)
	return b.report(), nil
}

// ImportCompanyDocuments matches owners by a case-insensitive substring of
// the legal name, the way fiscal validity feeds identify companies.
func (s *ingestService) ImportCompanyDocuments(table *ingest.Table) (*Report, error) {
	return s.importDocuments(table, documentTarget{
		kind: "company",
		resolve: func(tx *gorm.DB, rawOwner string, b *reportBuilder) (uint, bool, error) {
			company, err := repository.NewCompanyRepository(tx).FindByNameContains(rawOwner)
			if err != nil {
				return 0, false, err
			}
			if company == nil {
				b.unmatched[strings.ToUpper(strings.TrimSpace(rawOwner))] = struct{}{}
				return 0, false, nil
			}
			return company.ID, true, nil
		},
		upsert: func(tx *gorm.DB, ownerID uint, name string, due time.Time) (upsertOutcome, error) {
			docs := repository.NewDocumentRepository(tx)
			existing, err := docs.FindCompanyDocument(ownerID, name)
			if err != nil {
				return upsertUnchanged, err
			}
			if existing != nil {
				if existing.DueDate.Equal(due) {
					return upsertUnchanged, nil
				}
				existing.DueDate = due
				return upsertUpdated, docs.SaveCompanyDocument(existing)
			}
			doc := &model.CompanyDocument{CompanyID: ownerID, Name: name, DueDate: due}
			return upsertCreated, docs.SaveCompanyDocument(doc)
		},
	})
}

// ImportDriverDocuments matches owners by exact (case-insensitive) driver
// name. A name shared by two drivers is ambiguous: the row is reported and
// skipped, never resolved by guessing.
func (s *ingestService) ImportDriverDocuments(table *ingest.Table) (*Report, error) {
	return s.importDocuments(table, documentTarget{
		kind: "driver",
		resolve: func(tx *gorm.DB, rawOwner string, b *reportBuilder) (uint, bool, error) {
			matches, err := repository.NewDriverRepository(tx).FindAllByName(rawOwner)
			if err != nil {
				return 0, false, err
			}
			key := strings.ToUpper(strings.TrimSpace(rawOwner))
			switch len(matches) {
			case 0:
				b.unmatched[key] = struct{}{}
				return 0, false, nil
			case 1:
				return matches[0].ID, true, nil
			default:
				b.ambiguous[key] = struct{}{}
				return 0, false, nil
			}
		},
		upsert: func(tx *gorm.DB, ownerID uint, name string, due time.Time) (upsertOutcome, error) {
			docs := repository.NewDocumentRepository(tx)
			existing, err := docs.FindDriverDocument(ownerID, name)
			if err != nil {
				return upsertUnchanged, err
			}
			if existing != nil {
				if existing.DueDate.Equal(due) {
					return upsertUnchanged, nil
				}
				existing.DueDate = due
				return upsertUpdated, docs.SaveDriverDocument(existing)
			}
			doc := &model.DriverDocument{DriverID: ownerID, Name: name, DueDate: due}
			return upsertCreated, docs.SaveDriverDocument(doc)
		},
	})
}

// ImportVehicleDocuments matches owners by exact plate.
func (s *ingestService) ImportVehicleDocuments(table *ingest.Table) (*Report, error) {
	return s.importDocuments(table, documentTarget{
		kind: "vehicle",
		resolve: func(tx *gorm.DB, rawOwner string, b *reportBuilder) (uint, bool, error) {
			vehicle, err := repository.NewVehicleRepository(tx).FindByPlate(rawOwner)
			if err != nil {
				return 0, false, err
			}
			if vehicle == nil {
				b.unmatched[strings.ToUpper(strings.TrimSpace(rawOwner))] = struct{}{}
				return 0, false, nil
			}
			return vehicle.ID, true, nil
		},
		upsert: func(tx *gorm.DB, ownerID uint, name string, due time.Time) (upsertOutcome, error) {
			docs := repository.NewDocumentRepository(tx)
			existing, err := docs.FindVehicleDocument(ownerID, name)
			if err != nil {
				return upsertUnchanged, err
			}
			if existing != nil {
				if existing.DueDate.Equal(due) {
					return upsertUnchanged, nil
				}
				existing.DueDate = due
				return upsertUpdated, docs.SaveVehicleDocument(existing)
			}
			doc := &model.VehicleDocument{VehicleID: ownerID, Name: name, DueDate: due}
			return upsertCreated, docs.SaveVehicleDocument(doc)
		},
	})
}

func (s *ingestService) abort(batch string, err error) error {
	logger.Error("Ingestion batch aborted, all changes rolled back", err, map[string]interface{}{
		"batch": batch,
	})
	return fmt.Errorf("%w: %s", ErrBatchFailed, batch)
}

func (s *ingestService) logReport(batch string, b *reportBuilder) {
	logger.Info("Ingestion batch completed", map[string]interface{}{
		"batch":     batch,
		"created":   b.created,
		"updated":   b.updated,
		"unmatched": len(b.unmatched),
		"ambiguous": len(b.ambiguous),
		"existing":  len(b.exists),
	})
}
