package attendance

import (
	"testing"

	"github.com/brgysanroque/payroll-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
)

func TestManualEntryRequestValidate(t *testing.T) {
	valid := ManualEntryRequest{PersonnelID: "p-1", LateHours: 1, LateMinutes: 15}
	assert.NoError(t, valid.Validate())

	absentOnly := ManualEntryRequest{PersonnelID: "p-1", AbsentDays: 2}
	assert.NoError(t, absentOnly.Validate())

	// zero total duration is not a recordable incident
	zero := ManualEntryRequest{PersonnelID: "p-1"}
	err := zero.Validate()
	assert.Error(t, err)
	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)

	negative := ManualEntryRequest{PersonnelID: "p-1", LateMinutes: -5}
	assert.Error(t, negative.Validate())

	noPerson := ManualEntryRequest{LateMinutes: 10}
	assert.Error(t, noPerson.Validate())
}
