package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	reallocapimodels "realloc-backend/models/api/realloc"
)

// GenerateTaskReport monta o relatório em PDF das tarefas de uma
// realocação, para anexar à submissão no Prestserv.
func GenerateTaskReport(view reallocapimodels.ReallocView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateTaskReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 14)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 10, "Relatório de pendências da realocação", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Funcionário: %s", view.EmployeeName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Situação do fluxo: %s", view.TaskStatus), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	widths := []float64{70, 35, 30, 25, 30}
	headers := []string{"Tarefa", "Setor", "Status", "Prioridade", "Prazo"}
	for idx, h := range headers {
		pdf.CellFormat(widths[idx], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, task := range view.Tasks {
		due := "-"
		if task.DueDate != nil {
			due = task.DueDate.Format("02/01/2006")
		}
		pdf.CellFormat(widths[0], 8, task.Type, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, string(task.Sector), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 8, string(task.Status), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 8, string(task.Priority), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 8, due, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf = new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
