package intake

import (
	"time"
	"wav-intake-service/internal/app/models"
	"wav-intake-service/internal/pkg/constvars"
	"wav-intake-service/internal/pkg/dto/requests"
)

// BuildPatientPayload assembles the full remote patient schema from one
// row. Fields the sheet cannot supply get neutral values; the remote
// rejects absent keys. Audit stamps are taken from now, so createdOn and
// updatedOn are always equal within one build.
func BuildPatientPayload(row models.Row, columns models.ColumnMap, operatorID string, now time.Time) *requests.CreatePatient {
	mapped := MapPatientFields(row, columns, now)
	stamp := now.UTC().Format(time.RFC3339)

	return &requests.CreatePatient{
		FilterStatus:    constvars.SchemaPlaceholderValue,
		PatientEHRRecID: constvars.SchemaPlaceholderValue,
		PatientEHRType:  constvars.SchemaPlaceholderValue,
		PatientFName:    mapped.FirstName,
		PatientMName:    mapped.MiddleName,
		PatientLName:    mapped.LastName,
		DOB:             FormatMMDDYYYY(mapped.DOB),
		Age:             mapped.Age,
		PatientSex:      row[columns.PatientSex],
		PatientStatus:   constvars.PatientStatusActive,
		MaritalStatus:   constvars.SchemaPlaceholderValue,
		SSN:             "",
		StartOfCare:     FormatMMDDYYYY(mapped.StartOfCare),
		CareManagement: []requests.CareManagement{
			{CareManagementType: constvars.CareManagementTypeCPO},
		},
		MedicalRecordNo: row[columns.MRN],
		ServiceLine:     constvars.SchemaPlaceholderValue,
		PatientAddress:  mapped.Street,
		State:           mapped.State,
		PatientCity:     mapped.City,
		PatientState:    mapped.State,
		Zip:             mapped.Zip,
		PhysicianNPI:    row[columns.NPI],
		DABackOfficeID:  row[columns.DABackOfficeID],
		CompanyID:       row[columns.CompanyID],
		PGCompanyID:     row[columns.PGCompanyID],
		CreatedBy:       operatorID,
		CreatedOn:       stamp,
		UpdatedBy:       operatorID,
		UpdatedOn:       stamp,
		EpisodeDiagnoses: []requests.EpisodeDiagnosis{
			{
				ID:              constvars.SchemaPlaceholderValue,
				StartOfCare:     FormatMMDDYYYY(mapped.StartOfCare),
				StartOfEpisode:  FormatMMDDYYYY(mapped.EpisodeStart),
				EndOfEpisode:    FormatMMDDYYYY(mapped.EpisodeEnd),
				FirstDiagnosis:  row[columns.FirstDiagnosis],
				SecondDiagnosis: row[columns.SecondDiagnosis],
				ThirdDiagnosis:  row[columns.ThirdDiagnosis],
				FourthDiagnosis: row[columns.FourthDiagnosis],
				FifthDiagnosis:  row[columns.FifthDiagnosis],
				SixthDiagnosis:  row[columns.SixthDiagnosis],
				UpdatedOn:       stamp,
			},
		},
	}
}

// BuildOrderPayload assembles the full remote order schema for a resolved
// patient identifier. Same presence rule and stamping as the patient body.
func BuildOrderPayload(row models.Row, columns models.ColumnMap, patientID, operatorID string, now time.Time) *requests.CreateOrder {
	stamp := now.UTC().Format(time.RFC3339)
	date := func(value string) string {
		return FormatMMDDYYYY(ParseSheetDate(value))
	}

	return &requests.CreateOrder{
		OrderNo:               row[columns.OrderNo],
		OrderDate:             date(row[columns.OrderDate]),
		StartOfCare:           date(row[columns.StartOfCare]),
		EpisodeStartDate:      date(row[columns.EpisodeStart]),
		EpisodeEndDate:        date(row[columns.EpisodeEnd]),
		DocumentID:            row[columns.DocumentID],
		MRN:                   row[columns.MRN],
		PatientName:           row[columns.PatientName],
		SentToPhysicianDate:   date(row[columns.SendDate]),
		SentToPhysicianStatus: true,
		DocumentName:          row[columns.DocumentName],
		PatientID:             patientID,
		CompanyID:             row[columns.CompanyID],
		PGCompanyID:           row[columns.PGCompanyID],
		EntityType:            constvars.OrderEntityType,
		CreatedBy:             operatorID,
		CreatedOn:             stamp,
		UpdatedBy:             operatorID,
		UpdatedOn:             stamp,
		CPOUpdatedOn:          stamp,
	}
}
