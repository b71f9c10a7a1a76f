package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	backfillapimodels "realloc-backend/models/api/backfill"
)

type Provider interface {
	ExportBackfillSummary(list []backfillapimodels.Summary) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var summaryHeaders = []string{"Job", "Simulação", "Processados", "Criados", "Atualizados", "Pulados", "Com erro"}

func (i impl) ExportBackfillSummary(list []backfillapimodels.Summary) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("erro ao fechar arquivo")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, summaryHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar cabeçalho do xlsx")
	}
	if len(list) != 0 {
		row, err = writeSummaryData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao montar tabela de dados do xlsx")
		}
	}
	f.SetSheetName(sheet, "Reconciliação")
	return f.WriteToBuffer()
}

func writeSummaryData(f *excelize.File, sheet string, list []backfillapimodels.Summary, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(summaryHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Job"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Job); err != nil {
			return row, err
		}

		// "Simulação"
		col++
		dryRun := "não"
		if item.DryRun {
			dryRun = "sim"
		}
		if err := writeColumn(f, sheet, col, row, dryRun); err != nil {
			return row, err
		}

		// "Processados"
		col++
		if err := writeColumn(f, sheet, col, row, item.Processed); err != nil {
			return row, err
		}

		// "Criados"
		col++
		if err := writeColumn(f, sheet, col, row, item.Created); err != nil {
			return row, err
		}

		// "Atualizados"
		col++
		if err := writeColumn(f, sheet, col, row, item.Updated); err != nil {
			return row, err
		}

		// "Pulados"
		col++
		if err := writeColumn(f, sheet, col, row, item.Skipped); err != nil {
			return row, err
		}

		// "Com erro"
		col++
		if err := writeColumn(f, sheet, col, row, item.Errored); err != nil {
			return row, err
		}
	}
	return row, nil
}
