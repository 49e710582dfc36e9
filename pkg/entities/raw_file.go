package entities

// SampleIDKey is the raw file metadata key whose value references a sample id.
const SampleIDKey = "sample_id"

type RawFileMetadataCreate struct {
	MetadataKey   string `json:"metadata_key"   validate:"required"`
	MetadataValue string `json:"metadata_value"`
}

type RawFileCreate struct {
	DatasetID int64                   `json:"dataset_id" validate:"required,gt=0"`
	Path      string                  `json:"path"       validate:"required"`
	Metadata  []RawFileMetadataCreate `json:"metadata"   validate:"dive"`
}

type RawFileResponse struct {
	ID             int64            `json:"id"`
	Path           string           `json:"path"`
	SampleID       *string          `json:"sample_id"`
	ExtSampleID    *string          `json:"ext_sample_id"`
	SampleMetadata []SampleMetadata `json:"sample_metadata"`
}

type StatusMessage struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
