package entities

type Dataset struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"project_id"`
	Name      string `json:"name"`
}

type DatasetMetadata struct {
	ID        int64  `json:"id"`
	DatasetID int64  `json:"dataset_id"`
	Key       string `json:"key"`
	Value     string `json:"value"`
}

type DatasetWithMetadata struct {
	Dataset
	Metadata []DatasetMetadata `json:"metadata"`
}

// Well-known dataset metadata keys maintained by UpdateDatasetSizeMetadata.
const (
	RawFileSizeKey    = "raw_file_extension_size_of_all_files"
	LastSizeUpdateKey = "last_size_update"
)

// MetadataUpdate upserts the dataset size keys. A nil field leaves its key untouched;
// any supplied value, including the empty string, is written.
type MetadataUpdate struct {
	DatasetID      int64   `json:"dataset_id"       validate:"required,gt=0"`
	RawFileSize    *string `json:"raw_file_size"`
	LastSizeUpdate *string `json:"last_size_update"`
}

// MetadataValue is a single key/value pair to store on a dataset.
type MetadataValue struct {
	Key   string
	Value string
}

// Values returns the supplied fields as metadata values, skipping nil fields.
func (u MetadataUpdate) Values() []MetadataValue {
	values := make([]MetadataValue, 0, 2)
	if u.RawFileSize != nil {
		values = append(values, MetadataValue{Key: RawFileSizeKey, Value: *u.RawFileSize})
	}

	if u.LastSizeUpdate != nil {
		values = append(values, MetadataValue{Key: LastSizeUpdateKey, Value: *u.LastSizeUpdate})
	}

	return values
}
