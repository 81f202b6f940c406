package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
	"estate-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// TenantStatementData holds everything that goes on a tenant statement
type TenantStatementData struct {
	Tenant      *models.Tenant
	Rentals     []*models.Rental
	Payments    []*models.Payment
	TotalDue    float64
	TotalPaid   float64
	Outstanding float64
}

// ReportService renders receipts and statements as PDF and exports CSV
type ReportService struct {
	tenantRepo  *repositories.TenantRepository
	rentalSvc   *RentalService
	paymentRepo *repositories.PaymentRepository
}

func NewReportService(
	tenantRepo *repositories.TenantRepository,
	rentalSvc *RentalService,
	paymentRepo *repositories.PaymentRepository,
) *ReportService {
	return &ReportService{
		tenantRepo:  tenantRepo,
		rentalSvc:   rentalSvc,
		paymentRepo: paymentRepo,
	}
}

// GetTenantStatementData gathers rentals and payments for one tenant
func (s *ReportService) GetTenantStatementData(ctx context.Context, tenantID int) (*TenantStatementData, error) {
	tenant, err := s.tenantRepo.Get(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("tenant not found: %w", err)
	}

	rentals, err := s.rentalSvc.ListByTenant(ctx, tenantID)
	if err != nil {
		rentals = []*models.Rental{}
	}
	payments, err := s.paymentRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		payments = []*models.Payment{}
	}

	data := &TenantStatementData{
		Tenant:   tenant,
		Rentals:  rentals,
		Payments: payments,
	}
	for _, p := range payments {
		data.TotalDue += p.Amount
		if p.Status == models.PaymentPaid {
			data.TotalPaid += p.Amount
		}
	}
	data.Outstanding = data.TotalDue - data.TotalPaid
	return data, nil
}

// GenerateReceiptPDF renders a payment receipt for a settled payment
func (s *ReportService) GenerateReceiptPDF(ctx context.Context, paymentID int) ([]byte, error) {
	payment, err := s.paymentRepo.Get(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("payment not found: %w", err)
	}
	if payment.Status != models.PaymentPaid {
		return nil, fmt.Errorf("receipt available only for settled payments")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Rent Payment Receipt", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Receipt Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Receipt No: %s", payment.ReceiptNumber), "LB", 0, "L", false, 0, "")
	paidOn := ""
	if payment.PaidDate != nil {
		paidOn = payment.PaidDate.Format("02-Jan-2006")
	}
	pdf.CellFormat(95, 7, fmt.Sprintf("Paid On: %s", paidOn), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Tenant: %s", payment.TenantName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Property: %s", payment.PropertyTitle), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Due Date: %s", payment.DueDate.Format("02-Jan-2006")), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Method: %s", payment.Method), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	pdf.SetFillColor(200, 255, 200)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(190, 10, fmt.Sprintf("Amount Paid: %.2f", payment.Amount), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateTenantStatementPDF renders the tenant's full account statement
func (s *ReportService) GenerateTenantStatementPDF(data *TenantStatementData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Tenant Account Statement", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Tenant info
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Tenant Information", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", data.Tenant.Name), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Phone: %s", data.Tenant.Phone), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Contracts table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Contracts", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(70, 7, "Property", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Start", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "End", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Monthly", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Status", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, r := range data.Rentals {
		title := r.PropertyTitle
		if len(title) > 32 {
			title = title[:29] + "..."
		}
		pdf.CellFormat(70, 6, title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, timeutil.FormatDate(r.StartDate), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, timeutil.FormatDate(r.EndDate), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", r.MonthlyAmount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, string(r.EffectiveStatus), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(5)

	// Payments table
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Payments", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(40, 7, "Receipt #", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Due Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Paid On", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Amount", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, "Status", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, p := range data.Payments {
		paidOn := "-"
		if p.PaidDate != nil {
			paidOn = p.PaidDate.Format("02-Jan-2006")
		}
		pdf.CellFormat(40, 6, p.ReceiptNumber, "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, p.DueDate.Format("02-Jan-2006"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 6, paidOn, "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", p.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, string(p.Status), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(5)

	// Balance - highlight if outstanding
	if data.Outstanding > 0 {
		pdf.SetFillColor(255, 200, 200)
	} else {
		pdf.SetFillColor(200, 255, 200)
	}
	pdf.SetFont("Arial", "B", 14)
	balanceText := fmt.Sprintf("Outstanding: %.2f", data.Outstanding)
	if data.Outstanding <= 0 {
		balanceText = "FULLY PAID"
	}
	pdf.CellFormat(190, 10, balanceText, "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportPaymentsCSV exports all payments in one status as CSV
func (s *ReportService) ExportPaymentsCSV(ctx context.Context, status models.PaymentStatus) ([]byte, error) {
	payments, err := s.paymentRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"receipt_number", "tenant", "property", "due_date", "paid_date", "amount", "status", "method"})

	for _, p := range payments {
		paidOn := ""
		if p.PaidDate != nil {
			paidOn = timeutil.FormatDate(*p.PaidDate)
		}
		w.Write([]string{
			p.ReceiptNumber,
			p.TenantName,
			p.PropertyTitle,
			timeutil.FormatDate(p.DueDate),
			paidOn,
			strconv.FormatFloat(p.Amount, 'f', 2, 64),
			string(p.Status),
			p.Method,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
