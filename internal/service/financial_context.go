package service

import (
	"fmt"
	"strings"

	"finanzas-ai/internal/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// amountPrinter groups digits the way the mobile app's locale does
// (1,000,000).
var amountPrinter = message.NewPrinter(language.English)

// buildSystemInstruction appends the user's financial summary to the
// persona prompt. An absent or empty context leaves the prompt as is.
func buildSystemInstruction(fc *models.FinancialContext) string {
	return finaSystemPrompt + buildContextBlock(fc)
}

func buildContextBlock(fc *models.FinancialContext) string {
	if fc.IsEmpty() {
		return ""
	}

	period := fc.Period
	if period == "" {
		period = defaultPeriodLabel
	}

	summary := fc.Summary
	if summary == nil {
		summary = &models.FinancialSummary{}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n\nContexto financiero del usuario (%s):\n", period)
	fmt.Fprintf(&b, "- Ingresos: $%s\n", formatAmount(summary.TotalIncome))
	fmt.Fprintf(&b, "- Gastos: $%s\n", formatAmount(summary.TotalExpenses))
	fmt.Fprintf(&b, "- Balance: $%s\n", formatAmount(summary.Balance))
	fmt.Fprintf(&b, "- Patrimonio neto: $%s", formatAmount(summary.NetWorth))
	return b.String()
}

// formatAmount renders a missing value as 0.
func formatAmount(v *float64) string {
	if v == nil {
		return "0"
	}
	return amountPrinter.Sprintf("%v", number.Decimal(*v, number.MaxFractionDigits(3)))
}
