package entities

// Request inputs bound from path parameters and query strings.

type ListDatasets struct {
	ProjectID *int64 `query:"project_id" validate:"omitempty,gte=0"`
	DatasetID *int64 `query:"dataset_id" validate:"omitempty,gte=0"`
}

type GetDatasetWithMetadata struct {
	DatasetID int64  `params:"dataset_id" validate:"gte=0"`
	ProjectID *int64 `query:"project_id"  validate:"required,gte=0"`
}

type ListPatients struct {
	ProjectID *int64 `query:"project_id" validate:"omitempty,gte=0"`
}

// GetPatientsMetadata selects every patient of the project when PatientID is 0.
type GetPatientsMetadata struct {
	PatientID int64  `params:"patient_id" validate:"gte=0"`
	ProjectID *int64 `query:"project_id"  validate:"required,gte=0"`
}

// GetSamples selects every sample of the project when SampleID is 0.
type GetSamples struct {
	SampleID  int64  `params:"sample_id" validate:"gte=0"`
	ProjectID *int64 `query:"project_id" validate:"required,gte=0"`
}

type ListRawFilesWithMetadata struct {
	DatasetID int64 `params:"dataset_id" validate:"gte=0"`
}
