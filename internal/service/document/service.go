package document

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/payroll"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/validator"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// DocumentService renders payslips and payroll registers as downloadable
// documents.
type DocumentService interface {
	// PayslipPDF renders a single payslip as a PDF. Returns the file
	// bytes and a suggested filename.
	PayslipPDF(ctx context.Context, payslipID string) ([]byte, string, error)

	// PayrollRegisterXLSX renders all payslips inside [startDate, endDate]
	// (YYYY-MM-DD, inclusive) as a spreadsheet.
	PayrollRegisterXLSX(ctx context.Context, startDate, endDate string) ([]byte, string, error)
}

type documentServiceImpl struct {
	payrollRepo payroll.PayrollRepository
	loc         *time.Location
}

func NewDocumentService(payrollRepo payroll.PayrollRepository, loc *time.Location) DocumentService {
	if loc == nil {
		loc = time.UTC
	}
	return &documentServiceImpl{
		payrollRepo: payrollRepo,
		loc:         loc,
	}
}

func (s *documentServiceImpl) PayslipPDF(ctx context.Context, payslipID string) ([]byte, string, error) {
	p, err := s.payrollRepo.GetPayslipByID(ctx, payslipID)
	if err != nil {
		return nil, "", err
	}

	employeeName := p.EmployeeID
	if p.EmployeeName != nil {
		employeeName = *p.EmployeeName
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", employeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", p.Status))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Days worked: %s of %d", p.DaysWorked, p.TotalWorkingDays))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Basic pay: %s", money(p.BasicPay)))
	pdf.Ln(7)
	for _, a := range p.Allowances {
		pdf.Cell(0, 8, fmt.Sprintf("Allowance (%s): %s", a.AllowanceType, money(a.Amount)))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Gross salary: %s", money(p.GrossSalary)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	for _, d := range p.Deductions {
		pdf.Cell(0, 8, fmt.Sprintf("Deduction (%s): %s", d.DeductionType, money(d.Amount)))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Withholding tax: %s", money(p.WithholdingTax)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Net salary: %s", money(p.NetSalary)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render payslip pdf: %w", err)
	}

	filename := fmt.Sprintf("payslip-%s-%s.pdf", p.EmployeeID, p.StartDate.Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func (s *documentServiceImpl) PayrollRegisterXLSX(ctx context.Context, startDate, endDate string) ([]byte, string, error) {
	var errs validator.ValidationErrors
	start, ok := validator.IsValidDate(startDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, ok := validator.IsValidDate(endDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if len(errs) > 0 {
		return nil, "", errs
	}
	if end.Before(start) {
		return nil, "", validator.ValidationErrors{
			{Field: "end_date", Message: "must not be before start_date"},
		}
	}

	payslips, err := s.payrollRepo.ListForRegister(ctx,
		time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, s.loc),
		time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, s.loc))
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Payroll Register"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("create register sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheet, "A1", "PAYROLL REGISTER")
	f.MergeCell(sheet, "A1", "J1")
	f.SetCellStyle(sheet, "A1", "J1", headerStyle)
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Period: %s to %s", startDate, endDate))

	headers := []string{"Employee", "Start", "End", "Days Worked", "Basic Pay", "Allowances", "Deductions", "Gross", "Tax", "Net"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A4", "J4", headerStyle)

	totalGross := decimal.Zero
	totalNet := decimal.Zero
	row := 5
	for _, p := range payslips {
		employeeName := p.EmployeeID
		if p.EmployeeName != nil {
			employeeName = *p.EmployeeName
		}

		values := []interface{}{
			employeeName,
			p.StartDate.Format("2006-01-02"),
			p.EndDate.Format("2006-01-02"),
			p.DaysWorked.String(),
			money(p.BasicPay),
			money(p.TotalAllowances),
			money(p.TotalDeductions),
			money(p.GrossSalary),
			money(p.WithholdingTax),
			money(p.NetSalary),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}

		totalGross = totalGross.Add(p.GrossSalary)
		totalNet = totalNet.Add(p.NetSalary)
		row++
	}

	f.SetCellValue(sheet, fmt.Sprintf("A%d", row+1), "TOTAL")
	f.SetCellValue(sheet, fmt.Sprintf("H%d", row+1), money(totalGross))
	f.SetCellValue(sheet, fmt.Sprintf("J%d", row+1), money(totalNet))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("render payroll register: %w", err)
	}

	filename := fmt.Sprintf("payroll-register-%s-%s.xlsx", startDate, endDate)
	return buf.Bytes(), filename, nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
