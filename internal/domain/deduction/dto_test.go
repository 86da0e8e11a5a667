package deduction

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreateDeductionTypeRequestValidate(t *testing.T) {
	fixed := CreateDeductionTypeRequest{
		Name:            "Cooperative Dues",
		CalculationType: "FIXED",
		Amount:          decPtr("250"),
	}
	assert.NoError(t, fixed.Validate())

	percentage := CreateDeductionTypeRequest{
		Name:            "SSS Contribution",
		IsMandatory:     true,
		CalculationType: "PERCENTAGE",
		PercentageValue: decPtr("4.5"),
	}
	assert.NoError(t, percentage.Validate())

	// FIXED requires a positive amount
	assert.Error(t, (&CreateDeductionTypeRequest{Name: "x", CalculationType: "FIXED"}).Validate())
	assert.Error(t, (&CreateDeductionTypeRequest{Name: "x", CalculationType: "FIXED", Amount: decPtr("0")}).Validate())

	// PERCENTAGE requires a positive percentage value
	assert.Error(t, (&CreateDeductionTypeRequest{Name: "x", CalculationType: "PERCENTAGE"}).Validate())
	assert.Error(t, (&CreateDeductionTypeRequest{Name: "x", CalculationType: "PERCENTAGE", PercentageValue: decPtr("-1")}).Validate())

	// unknown calculation type
	assert.Error(t, (&CreateDeductionTypeRequest{Name: "x", CalculationType: "WEEKLY", Amount: decPtr("10")}).Validate())

	// name is required
	assert.Error(t, (&CreateDeductionTypeRequest{CalculationType: "FIXED", Amount: decPtr("10")}).Validate())
}

func TestApplyDeductionRequestValidate(t *testing.T) {
	byIDs := ApplyDeductionRequest{DeductionTypeID: "dt-1", PersonnelIDs: []string{"p-1"}}
	assert.NoError(t, byIDs.Validate())

	all := ApplyDeductionRequest{DeductionTypeID: "dt-1", ApplyToAll: true}
	assert.NoError(t, all.Validate())

	// no targets at all
	assert.Error(t, (&ApplyDeductionRequest{DeductionTypeID: "dt-1"}).Validate())
	assert.Error(t, (&ApplyDeductionRequest{PersonnelIDs: []string{"p-1"}}).Validate())
}
