package entities

type SampleMetadata struct {
	ID       int64  `json:"id"`
	SampleID int64  `json:"sample_id"`
	Key      string `json:"key"`
	Value    string `json:"value"`
}

type SampleWithoutPatient struct {
	ID           int64            `json:"id"`
	PatientID    int64            `json:"patient_id"`
	ExtSampleID  string           `json:"ext_sample_id"`
	ExtSampleURL string           `json:"ext_sample_url"`
	Metadata     []SampleMetadata `json:"metadata"`
}

type Sample struct {
	SampleWithoutPatient
	Patient Patient `json:"patient"`
}
