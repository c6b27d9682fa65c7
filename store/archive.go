package store

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/vitalio/triage-api/schema"
)

var ErrReportNotFound = fmt.Errorf("report not found")

// ReportArchive keeps finalized reports for downstream consumers such as
// a PDF generator.
type ReportArchive struct {
	ormDB *gorm.DB
}

func NewReportArchive(ormDB *gorm.DB) *ReportArchive {
	return &ReportArchive{
		ormDB: ormDB,
	}
}

// Migrate creates or updates the archive table.
func (a *ReportArchive) Migrate() error {
	return a.ormDB.AutoMigrate(&schema.ReportRecord{}).Error
}

// Ping is to check the archive health status
func (a *ReportArchive) Ping() error {
	return a.ormDB.DB().Ping()
}

// SaveReport archives a finalized report together with its rendered text.
func (a *ReportArchive) SaveReport(report schema.FinalReport, rendered string) error {
	record := schema.ReportRecord{
		ID:         report.ID,
		CustomerID: report.Customer.ID,
		Score:      report.Assessment.Score,
		Urgency:    string(report.Urgency),
		Report:     schema.ReportDocument(report),
		Rendered:   rendered,
	}

	return a.ormDB.Create(&record).Error
}

// GetReport fetches an archived report by its identifier.
func (a *ReportArchive) GetReport(reportID string) (*schema.ReportRecord, error) {
	var record schema.ReportRecord
	if err := a.ormDB.Where("id = ?", reportID).First(&record).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	return &record, nil
}
