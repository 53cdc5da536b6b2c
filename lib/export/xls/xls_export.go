package xlsexport

import (
	"bytes"

	dbmodels "peso-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportPipelineReport(list []dbmodels.JobApplication) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var pipelineHeaders = []string{"Applicant", "Job", "Company", "Current stage", "Status", "Applied at", "Archived at"}

func (i impl) ExportPipelineReport(list []dbmodels.JobApplication) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, pipelineHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writePipelineData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Pipeline")
	return f.WriteToBuffer()
}

func writePipelineData(f *excelize.File, sheet string, list []dbmodels.JobApplication, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(pipelineHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		applicant := ""
		if item.Graduate != nil {
			applicant = item.Graduate.GetFullName()
		}
		if err := writeColumn(f, sheet, col, row, applicant); err != nil {
			return row, err
		}

		col++
		jobTitle := ""
		companyName := ""
		if item.Job != nil {
			jobTitle = item.Job.Title
			if item.Job.Company != nil {
				companyName = item.Job.Company.Name
			}
		}
		if err := writeColumn(f, sheet, col, row, jobTitle); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, companyName); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.GetStage()); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("2006-01-02 15:04")); err != nil {
			return row, err
		}

		col++
		archived := ""
		if item.ArchivedAt != nil {
			archived = item.ArchivedAt.Format("2006-01-02 15:04")
		}
		if err := writeColumn(f, sheet, col, row, archived); err != nil {
			return row, err
		}
	}
	return row, nil
}
