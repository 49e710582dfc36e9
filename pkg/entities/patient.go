package entities

type Patient struct {
	ID              int64   `json:"id"`
	ProjectID       int64   `json:"project_id"`
	ExtPatientID    string  `json:"ext_patient_id"`
	ExtPatientURL   string  `json:"ext_patient_url"`
	PublicPatientID *string `json:"public_patient_id"`
}

type PatientWithSampleCount struct {
	Patient
	SampleCount int64 `json:"sample_count"`
}

type PatientMetadata struct {
	ID        int64  `json:"id"`
	PatientID int64  `json:"patient_id"`
	Key       string `json:"key"`
	Value     string `json:"value"`
}

type PatientWithSamples struct {
	Patient
	Metadata []PatientMetadata      `json:"metadata"`
	Samples  []SampleWithoutPatient `json:"samples"`
}
