package store

import (
	"context"

	"github.com/redmane/redmane/pkg/contract"
	"github.com/redmane/redmane/pkg/entities"
)

type ProjectStore interface {
	// ListProjects returns every project ordered by id.
	ListProjects(ctx context.Context) ([]*entities.Project, *contract.Error)
}

type DatasetStore interface {
	// ListDatasets returns the datasets matching all of the non-nil filters.
	ListDatasets(ctx context.Context, projectID, datasetID *int64) ([]*entities.Dataset, *contract.Error)
	// GetDatasetWithMetadata returns the dataset with its metadata,
	// or RESOURCE_DOES_NOT_EXIST when the project holds no such dataset.
	GetDatasetWithMetadata(ctx context.Context, datasetID, projectID int64) (*entities.DatasetWithMetadata, *contract.Error)
	// UpsertDatasetMetadata sets the value of each key for the dataset, updating the
	// existing row when there is one and inserting a single row otherwise.
	// All keys are written in one transaction; RESOURCE_DOES_NOT_EXIST is returned
	// when the dataset does not exist.
	UpsertDatasetMetadata(ctx context.Context, datasetID int64, values []entities.MetadataValue) *contract.Error
}

type PatientStore interface {
	ListPatients(ctx context.Context, projectID *int64) ([]*entities.PatientWithSampleCount, *contract.Error)
	// GetPatientsWithSamples returns the patient tree of the project.
	// A zero patientID selects every patient of the project.
	GetPatientsWithSamples(ctx context.Context, projectID, patientID int64) ([]*entities.PatientWithSamples, *contract.Error)
}

type SampleStore interface {
	// GetSamples returns samples with their metadata and owning patient.
	// A zero sampleID selects every sample of the project.
	GetSamples(ctx context.Context, projectID, sampleID int64) ([]*entities.Sample, *contract.Error)
}

type RawFileStore interface {
	ListRawFilesWithMetadata(ctx context.Context, datasetID int64) ([]*entities.RawFileResponse, *contract.Error)
	// AddRawFiles inserts all raw files and their metadata in a single transaction.
	AddRawFiles(ctx context.Context, rawFiles []*entities.RawFileCreate) *contract.Error
}

type RedmaneStore interface {
	ProjectStore
	DatasetStore
	PatientStore
	SampleStore
	RawFileStore

	Close() error
}
