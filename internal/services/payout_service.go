package services

import (
	"bytes"
	"fmt"
	"time"

	"travelease/internal/domain"
	"travelease/internal/domain/models"
	"travelease/internal/metrics"
	"travelease/internal/repositories"
	"travelease/internal/utils"

	"github.com/xuri/excelize/v2"
)

// PayoutService exposes the provider-facing payout operations: balance,
// history, bulk withdrawal and XLSX export.
type PayoutService struct {
	Payouts   repositories.PayoutRepository
	Providers repositories.ProviderRepository
	RequestID string
}

// WithdrawResult summarizes one bulk settlement.
type WithdrawResult struct {
	SettledCount int64   `json:"settled_count"`
	Amount       float64 `json:"amount"`
}

func (s PayoutService) provider(rc domain.RequestContext) (models.Provider, error) {
	if !rc.Authenticated() {
		return models.Provider{}, domain.UnauthorizedError{Msg: "sign in as a provider"}
	}
	return s.Providers.GetByProfileID(rc.UserID)
}

func (s PayoutService) List(rc domain.RequestContext) ([]models.Payout, error) {
	provider, err := s.provider(rc)
	if err != nil {
		return nil, err
	}
	if err := s.Payouts.EnsureTable(); err != nil {
		return nil, domain.InternalError{Msg: "payouts table unavailable", Err: err}
	}
	return s.Payouts.ListByProvider(provider.ID)
}

func (s PayoutService) PendingBalance(rc domain.RequestContext) (float64, error) {
	provider, err := s.provider(rc)
	if err != nil {
		return 0, err
	}
	return s.Payouts.PendingBalance(provider.ID)
}

// Withdraw settles every pending payout of the calling provider in one
// write. There is no per-payout granularity here on purpose.
func (s PayoutService) Withdraw(rc domain.RequestContext) (WithdrawResult, error) {
	provider, err := s.provider(rc)
	if err != nil {
		return WithdrawResult{}, err
	}

	n, amount, err := s.Payouts.SettleAllPending(provider.ID)
	if err != nil {
		return WithdrawResult{}, err
	}
	if n == 0 {
		return WithdrawResult{}, domain.NotFoundError{Resource: "pending payout"}
	}

	metrics.AddPayoutsSettled(int(n))
	utils.LogEvent(s.RequestID, "payout", "withdraw",
		fmt.Sprintf("provider_id=%d settled=%d amount=%s", provider.ID, n, utils.FormatMoney(amount)))

	return WithdrawResult{SettledCount: n, Amount: amount}, nil
}

// ExportXLSX renders the provider's payout history as a spreadsheet.
func (s PayoutService) ExportXLSX(rc domain.RequestContext) ([]byte, string, error) {
	provider, err := s.provider(rc)
	if err != nil {
		return nil, "", err
	}

	payouts, err := s.Payouts.ListByProvider(provider.ID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Payouts"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "failed to create sheet", Err: err}
	}
	f.SetActiveSheet(index)

	_ = f.SetCellValue(sheet, "A1", fmt.Sprintf("Payouts for %s", provider.CompanyName))
	headers := []string{"ID", "Amount", "Status", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(sheet, cell, h)
	}

	var pending, completed float64
	for i, p := range payouts {
		row := i + 3
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.ID)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.Amount)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.Status)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.CreatedAt.Format("2006-01-02 15:04"))
		switch p.Status {
		case models.PayoutPending:
			pending += p.Amount
		case models.PayoutCompleted:
			completed += p.Amount
		}
	}

	totalRow := len(payouts) + 4
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Pending total")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow), pending)
	_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow+1), "Completed total")
	_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow+1), completed)

	_ = f.SetColWidth(sheet, "A", "D", 20)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	_ = f.SetCellStyle(sheet, "A1", "A1", style)
	f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "failed to write spreadsheet", Err: err}
	}

	name := fmt.Sprintf("payouts_%d_%s.xlsx", provider.ID, time.Now().Format("2006-01-02"))
	return buf.Bytes(), name, nil
}
