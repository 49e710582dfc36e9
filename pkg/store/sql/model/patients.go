package model

import "github.com/redmane/redmane/pkg/entities"

const (
	TableNamePatient         = "patients"
	TableNamePatientMetadata = "patients_metadata"
)

// Patient mapped from table <patients>.
type Patient struct {
	ID              int64             `db:"id"                gorm:"column:id;primaryKey;autoIncrement:true"`
	ProjectID       int64             `db:"project_id"        gorm:"column:project_id;not null;index"`
	ExtPatientID    string            `db:"ext_patient_id"    gorm:"column:ext_patient_id"`
	ExtPatientURL   string            `db:"ext_patient_url"   gorm:"column:ext_patient_url"`
	PublicPatientID *string           `db:"public_patient_id" gorm:"column:public_patient_id"`
	Metadata        []PatientMetadata `gorm:"foreignKey:PatientID"`
	Samples         []Sample          `gorm:"foreignKey:PatientID"`
}

func (Patient) TableName() string {
	return TableNamePatient
}

// PatientMetadata mapped from table <patients_metadata>.
type PatientMetadata struct {
	ID        int64  `db:"id"         gorm:"column:id;primaryKey;autoIncrement:true"`
	PatientID int64  `db:"patient_id" gorm:"column:patient_id;not null;index"`
	Key       string `db:"key"        gorm:"column:key;not null"`
	Value     string `db:"value"      gorm:"column:value"`
}

func (PatientMetadata) TableName() string {
	return TableNamePatientMetadata
}

// PatientColumns are the patient fields shared by the flat join rows.
type PatientColumns struct {
	PatientID       int64
	ProjectID       int64
	ExtPatientID    string
	ExtPatientURL   string
	PublicPatientID *string
}

func (c PatientColumns) ToEntity() entities.Patient {
	return entities.Patient{
		ID:              c.PatientID,
		ProjectID:       c.ProjectID,
		ExtPatientID:    c.ExtPatientID,
		ExtPatientURL:   c.ExtPatientURL,
		PublicPatientID: c.PublicPatientID,
	}
}

// PatientWithSampleCountRow is a patient with its number of samples.
type PatientWithSampleCountRow struct {
	PatientColumns
	SampleCount int64
}

func (r PatientWithSampleCountRow) ToEntity() *entities.PatientWithSampleCount {
	return &entities.PatientWithSampleCount{
		Patient:     r.PatientColumns.ToEntity(),
		SampleCount: r.SampleCount,
	}
}

// PatientMetadataRow is one row of patients LEFT JOIN patients_metadata.
// The metadata columns are nil when the patient has no metadata.
type PatientMetadataRow struct {
	PatientColumns
	MetadataID    *int64
	MetadataKey   *string
	MetadataValue *string
}

func (r PatientMetadataRow) Metadata() (entities.PatientMetadata, bool) {
	if r.MetadataID == nil {
		return entities.PatientMetadata{}, false
	}

	return entities.PatientMetadata{
		ID:        *r.MetadataID,
		PatientID: r.PatientID,
		Key:       derefString(r.MetadataKey),
		Value:     derefString(r.MetadataValue),
	}, true
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
