package intake

import (
	"testing"
	"time"
	"wav-intake-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPatientPayload(t *testing.T) {
	columns := models.DefaultColumnMap()
	now := time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

	row := models.Row{
		columns.PatientName:    "Jane Middle Public",
		columns.DOB:            "44197",
		columns.Address:        "123 Main St, Springfield, IL 62704",
		columns.PatientSex:     "F",
		columns.MRN:            "MRN-1",
		columns.NPI:            "1234567890",
		columns.StartOfCare:    "1/2/2024",
		columns.EpisodeStart:   "1/2/2024",
		columns.EpisodeEnd:     "30/6/2024",
		columns.FirstDiagnosis: "I10",
		columns.CompanyID:      "C1",
		columns.PGCompanyID:    "PG1",
	}

	payload := BuildPatientPayload(row, columns, "operator-1", now)

	t.Run("Mapped Fields", func(t *testing.T) {
		assert.Equal(t, "Jane", payload.PatientFName)
		assert.Equal(t, "Middle", payload.PatientMName)
		assert.Equal(t, "Public", payload.PatientLName)
		assert.Equal(t, "01/01/2021", payload.DOB)
		assert.Equal(t, "3", payload.Age)
		assert.Equal(t, "123 Main St", payload.PatientAddress)
		assert.Equal(t, "Springfield", payload.PatientCity)
		assert.Equal(t, "IL", payload.State)
		assert.Equal(t, "IL", payload.PatientState)
		assert.Equal(t, "62704", payload.Zip)
		assert.Equal(t, "MRN-1", payload.MedicalRecordNo)
		assert.Equal(t, "1234567890", payload.PhysicianNPI)
	})

	t.Run("Neutral Defaults", func(t *testing.T) {
		assert.Equal(t, "string", payload.FilterStatus)
		assert.Equal(t, "string", payload.MaritalStatus)
		assert.Equal(t, "Active", payload.PatientStatus)
		assert.Equal(t, "", payload.SSN)
		assert.Equal(t, "", payload.Email)
		require.Len(t, payload.CareManagement, 1)
		assert.Equal(t, "CPO", payload.CareManagement[0].CareManagementType)
	})

	t.Run("Audit Stamps Equal At Build Time", func(t *testing.T) {
		assert.Equal(t, "operator-1", payload.CreatedBy)
		assert.Equal(t, "operator-1", payload.UpdatedBy)
		assert.Equal(t, now.Format(time.RFC3339), payload.CreatedOn)
		assert.Equal(t, payload.CreatedOn, payload.UpdatedOn)
	})

	t.Run("Episode Diagnoses", func(t *testing.T) {
		require.Len(t, payload.EpisodeDiagnoses, 1)
		episode := payload.EpisodeDiagnoses[0]
		assert.Equal(t, "01/02/2024", episode.StartOfCare)
		assert.Equal(t, "01/02/2024", episode.StartOfEpisode)
		assert.Equal(t, "06/30/2024", episode.EndOfEpisode)
		assert.Equal(t, "I10", episode.FirstDiagnosis)
		assert.Equal(t, payload.CreatedOn, episode.UpdatedOn)
	})
}

func TestBuildOrderPayload(t *testing.T) {
	columns := models.DefaultColumnMap()
	now := time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

	row := models.Row{
		columns.OrderNo:      "ORD-9",
		columns.OrderDate:    "14/6/2024",
		columns.SendDate:     "",
		columns.DocumentID:   "DOC-7",
		columns.DocumentName: "Plan of Care",
		columns.MRN:          "MRN-1",
		columns.PatientName:  "Jane Public",
		columns.CompanyID:    "C1",
		columns.PGCompanyID:  "PG1",
	}

	payload := BuildOrderPayload(row, columns, "patient-5", "operator-1", now)

	assert.Equal(t, "ORD-9", payload.OrderNo)
	assert.Equal(t, "06/14/2024", payload.OrderDate)
	assert.Equal(t, "", payload.SentToPhysicianDate)
	assert.True(t, payload.SentToPhysicianStatus)
	assert.False(t, payload.SignedByPhysicianStatus)
	assert.Equal(t, "DOC-7", payload.DocumentID)
	assert.Equal(t, "Plan of Care", payload.DocumentName)
	assert.Equal(t, "patient-5", payload.PatientID)
	assert.Equal(t, "ORDER", payload.EntityType)
	assert.Equal(t, 0, payload.DAResponseStatusCode)
	assert.Equal(t, payload.CreatedOn, payload.UpdatedOn)
	assert.Equal(t, payload.CreatedOn, payload.CPOUpdatedOn)
}
