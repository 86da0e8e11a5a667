package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePayrollRequestValidate(t *testing.T) {
	valid := GeneratePayrollRequest{PeriodStart: "2026-06-01", PeriodEnd: "2026-06-15"}
	assert.NoError(t, valid.Validate())

	singleDay := GeneratePayrollRequest{PeriodStart: "2026-06-01", PeriodEnd: "2026-06-01"}
	assert.NoError(t, singleDay.Validate())

	inverted := GeneratePayrollRequest{PeriodStart: "2026-06-15", PeriodEnd: "2026-06-01"}
	assert.Error(t, inverted.Validate())

	badFormat := GeneratePayrollRequest{PeriodStart: "06/01/2026", PeriodEnd: "2026-06-15"}
	assert.Error(t, badFormat.Validate())

	empty := GeneratePayrollRequest{}
	assert.Error(t, empty.Validate())
}

func TestReleasePayrollRequestValidate(t *testing.T) {
	assert.NoError(t, (&ReleasePayrollRequest{EntryIDs: []string{"e-1"}}).Validate())
	assert.Error(t, (&ReleasePayrollRequest{}).Validate())
}

func TestBulkDeleteRequestValidate(t *testing.T) {
	assert.NoError(t, (&BulkDeleteRequest{EntryIDs: []string{"e-1", "e-2"}}).Validate())
	assert.Error(t, (&BulkDeleteRequest{}).Validate())
}
