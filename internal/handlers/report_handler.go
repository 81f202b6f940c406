package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"estate-backend/internal/models"
	"estate-backend/internal/services"

	"github.com/gorilla/mux"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// PaymentReceipt serves the PDF receipt for a settled payment
func (h *ReportHandler) PaymentReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payment ID")
		return
	}

	pdfBytes, err := h.reportService.GenerateReceiptPDF(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="receipt_%d.pdf"`, id))
	w.Write(pdfBytes)
}

// TenantStatement serves the full account statement for a tenant as PDF
func (h *ReportHandler) TenantStatement(w http.ResponseWriter, r *http.Request) {
	tenantID, err := strconv.Atoi(mux.Vars(r)["tenant_id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid tenant ID")
		return
	}

	data, err := h.reportService.GetTenantStatementData(r.Context(), tenantID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	pdfBytes, err := h.reportService.GenerateTenantStatementPDF(data)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate statement")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="statement_tenant_%d.pdf"`, tenantID))
	w.Write(pdfBytes)
}

// ExportPayments streams payments in one status as CSV
func (h *ReportHandler) ExportPayments(w http.ResponseWriter, r *http.Request) {
	status := models.PaymentStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = models.PaymentPending
	}
	switch status {
	case models.PaymentPending, models.PaymentPaid, models.PaymentOverdue:
	default:
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	csvBytes, err := h.reportService.ExportPaymentsCSV(r.Context(), status)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payments_%s.csv"`, status))
	w.Write(csvBytes)
}
