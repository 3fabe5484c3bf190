// Package export renders inputs and results as deterministic tabular CSV.
// Field names and row order are stable so downstream spreadsheets and diffs
// stay meaningful across runs.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"fjacquet/gearcalc/internal/currencyutils"
	"fjacquet/gearcalc/internal/logging"
	"fjacquet/gearcalc/internal/models"
)

var log = logging.GetLogger()

// Delimiter is the CSV output delimiter, configurable via config.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logging.NewLogrusAdapterFromLogger(logger)
	}
}

// ReportRow is one line of the CSV report.
type ReportRow struct {
	Section string `csv:"section"`
	Field   string `csv:"field"`
	Value   string `csv:"value"`
}

func amountRow(section, field string, value float64) ReportRow {
	return ReportRow{Section: section, Field: field, Value: currencyutils.FormatAmount(value)}
}

func rateRow(section, field string, value float64) ReportRow {
	return ReportRow{Section: section, Field: field, Value: currencyutils.FormatRate(value)}
}

// BuildRows flattens inputs and results into the report's fixed row order:
// input groups first, then the result groups in pipeline order, then the
// loan comparison and milestone schedule.
func BuildRows(inputs models.CalculatorInputs, results models.Results) []ReportRow {
	rows := []ReportRow{
		amountRow("personal", "base_taxable_income", inputs.Personal.BaseTaxableIncome),
		{Section: "personal", Field: "ownership_percentage", Value: currencyutils.FormatAmount(inputs.Personal.OwnershipPercentage)},
		rateRow("personal", "marginal_tax_rate", inputs.Personal.MarginalTaxRate),
		rateRow("personal", "medicare_levy_rate", inputs.Personal.MedicareLevyRate),

		amountRow("property", "purchase_price", inputs.Property.PurchasePrice),
		amountRow("property", "loan_amount", inputs.Property.LoanAmount),
		rateRow("property", "interest_rate", inputs.Property.InterestRate),
		{Section: "property", Field: "loan_term_years", Value: strconv.Itoa(inputs.Property.LoanTermYears)},
		{Section: "property", Field: "is_interest_only", Value: strconv.FormatBool(inputs.Property.IsInterestOnly)},
		rateRow("property", "lvr", inputs.Property.LVR()),

		amountRow("rental_income", "weekly_rent", inputs.RentalIncome.WeeklyRent),
		{Section: "rental_income", Field: "vacancy_weeks_per_year", Value: currencyutils.FormatAmount(inputs.RentalIncome.VacancyWeeksPerYear)},

		amountRow("operating_expenses", "council_rates", inputs.OperatingExpenses.CouncilRates),
		amountRow("operating_expenses", "water_rates", inputs.OperatingExpenses.WaterRates),
		amountRow("operating_expenses", "insurance", inputs.OperatingExpenses.Insurance),
		amountRow("operating_expenses", "property_management", inputs.OperatingExpenses.PropertyManagement),
		amountRow("operating_expenses", "repairs_maintenance", inputs.OperatingExpenses.RepairsMaintenance),
		amountRow("operating_expenses", "strata_fees", inputs.OperatingExpenses.StrataFees),
		amountRow("operating_expenses", "other", inputs.OperatingExpenses.Other),

		amountRow("depreciation_inputs", "construction_value", inputs.Depreciation.ConstructionValue),
		amountRow("depreciation_inputs", "plant_equipment_annual", inputs.Depreciation.PlantEquipmentAnnual),

		amountRow("cashflow", "gross_rental_income", results.Cashflow.GrossRentalIncome),
		amountRow("cashflow", "total_operating_expenses", results.Cashflow.TotalOperatingExpenses),
		amountRow("cashflow", "interest_expense", results.Cashflow.InterestExpense),
		amountRow("cashflow", "net_cashflow_pre_tax", results.Cashflow.NetCashflowPreTax),

		amountRow("depreciation", "capital_works_deduction", results.Depreciation.CapitalWorksDeduction),
		amountRow("depreciation", "plant_equipment_deduction", results.Depreciation.PlantEquipmentDeduction),
		amountRow("depreciation", "total_depreciation", results.Depreciation.TotalDepreciation),

		amountRow("rental_pl", "net_rental_result", results.RentalPL.NetRentalResult),
		{Section: "rental_pl", Field: "is_negatively_geared", Value: strconv.FormatBool(results.RentalPL.IsNegativelyGeared)},

		amountRow("tax_impact", "total_tax_without_property", results.TaxImpact.WithoutProperty.TotalTax),
		amountRow("tax_impact", "taxable_income_with_property", results.TaxImpact.WithProperty.TaxableIncome),
		amountRow("tax_impact", "total_tax_with_property", results.TaxImpact.WithProperty.TotalTax),
		amountRow("tax_impact", "tax_benefit", results.TaxImpact.TaxBenefit),
		amountRow("tax_impact", "after_tax_cashflow", results.TaxImpact.AfterTaxCashflow),

		amountRow("loan_comparison", "monthly_pi", results.LoanComparison.MonthlyPI),
		amountRow("loan_comparison", "annual_pi", results.LoanComparison.AnnualPI),
		amountRow("loan_comparison", "monthly_io", results.LoanComparison.MonthlyIO),
		amountRow("loan_comparison", "annual_io", results.LoanComparison.AnnualIO),
		amountRow("loan_comparison", "monthly_savings_io", results.LoanComparison.MonthlySavingsIO),
		amountRow("loan_comparison", "total_interest_pi", results.LoanComparison.TotalInterestPI),
		amountRow("loan_comparison", "total_interest_io", results.LoanComparison.TotalInterestIO),
		amountRow("loan_comparison", "extra_interest_io", results.LoanComparison.ExtraInterestIO),
		amountRow("loan_comparison", "principal_remaining_io", results.LoanComparison.PrincipalRemainingIO),
	}

	for _, m := range results.Milestones {
		section := fmt.Sprintf("milestone_year_%d", m.Year)
		rows = append(rows,
			amountRow(section, "principal_paid", m.PrincipalPaid),
			amountRow(section, "interest_paid", m.InterestPaid),
			amountRow(section, "remaining_balance", m.RemainingBalance),
		)
	}

	return rows
}

// WriteReportCSV builds the report rows and writes them to a CSV file,
// creating the parent directory if needed.
func WriteReportCSV(inputs models.CalculatorInputs, results models.Results, csvFile string) error {
	rows := BuildRows(inputs, results)

	log.Info("Writing report to CSV file",
		logging.F("file", csvFile), logging.F("rows", len(rows)))

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal report to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.Info("Successfully wrote report", logging.F("file", csvFile))
	return nil
}
