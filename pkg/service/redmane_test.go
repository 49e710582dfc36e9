package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmane/redmane/pkg/contract"
	"github.com/redmane/redmane/pkg/entities"
	"github.com/redmane/redmane/pkg/utils"
)

type FakeStore struct {
	upsertedDatasetID int64
	upserted          []entities.MetadataValue
	added             []*entities.RawFileCreate
	err               *contract.Error
}

func (f *FakeStore) ListProjects(_ context.Context) ([]*entities.Project, *contract.Error) {
	return nil, f.err
}

func (f *FakeStore) ListDatasets(_ context.Context, _, _ *int64) ([]*entities.Dataset, *contract.Error) {
	return nil, f.err
}

func (f *FakeStore) GetDatasetWithMetadata(
	_ context.Context, datasetID, projectID int64,
) (*entities.DatasetWithMetadata, *contract.Error) {
	if f.err != nil {
		return nil, f.err
	}

	return &entities.DatasetWithMetadata{
		Dataset:  entities.Dataset{ID: datasetID, ProjectID: projectID},
		Metadata: []entities.DatasetMetadata{},
	}, nil
}

func (f *FakeStore) UpsertDatasetMetadata(
	_ context.Context, datasetID int64, values []entities.MetadataValue,
) *contract.Error {
	f.upsertedDatasetID = datasetID
	f.upserted = values

	return f.err
}

func (f *FakeStore) ListPatients(_ context.Context, _ *int64) ([]*entities.PatientWithSampleCount, *contract.Error) {
	return nil, f.err
}

func (f *FakeStore) GetPatientsWithSamples(
	_ context.Context, _, _ int64,
) ([]*entities.PatientWithSamples, *contract.Error) {
	return nil, f.err
}

func (f *FakeStore) GetSamples(_ context.Context, _, _ int64) ([]*entities.Sample, *contract.Error) {
	return nil, f.err
}

func (f *FakeStore) ListRawFilesWithMetadata(
	_ context.Context, _ int64,
) ([]*entities.RawFileResponse, *contract.Error) {
	return nil, f.err
}

func (f *FakeStore) AddRawFiles(_ context.Context, rawFiles []*entities.RawFileCreate) *contract.Error {
	f.added = rawFiles

	return f.err
}

func (f *FakeStore) Close() error {
	return nil
}

func TestUpdateDatasetSizeMetadata(t *testing.T) {
	t.Parallel()

	scenarios := []struct {
		name     string
		input    entities.MetadataUpdate
		expected []entities.MetadataValue
	}{
		{
			name: "both fields",
			input: entities.MetadataUpdate{
				DatasetID:      3,
				RawFileSize:    utils.PtrTo("1024"),
				LastSizeUpdate: utils.PtrTo("2024-05-01"),
			},
			expected: []entities.MetadataValue{
				{Key: entities.RawFileSizeKey, Value: "1024"},
				{Key: entities.LastSizeUpdateKey, Value: "2024-05-01"},
			},
		},
		{
			name:     "only last size update",
			input:    entities.MetadataUpdate{DatasetID: 3, LastSizeUpdate: utils.PtrTo("2024-05-01")},
			expected: []entities.MetadataValue{{Key: entities.LastSizeUpdateKey, Value: "2024-05-01"}},
		},
		{
			name:     "empty string is written",
			input:    entities.MetadataUpdate{DatasetID: 3, RawFileSize: utils.PtrTo("")},
			expected: []entities.MetadataValue{{Key: entities.RawFileSizeKey, Value: ""}},
		},
		{
			name:     "no fields",
			input:    entities.MetadataUpdate{DatasetID: 3},
			expected: []entities.MetadataValue{},
		},
	}

	for _, scenario := range scenarios {
		scenario := scenario

		t.Run(scenario.name, func(t *testing.T) {
			t.Parallel()

			store := &FakeStore{}
			service := RedmaneService{Store: store}

			input := scenario.input
			response, err := service.UpdateDatasetSizeMetadata(context.Background(), &input)
			require.Nil(t, err)
			assert.Equal(t, &input, response)
			assert.Equal(t, int64(3), store.upsertedDatasetID)
			assert.Equal(t, scenario.expected, store.upserted)
		})
	}
}

func TestUpdateDatasetSizeMetadataNotFound(t *testing.T) {
	t.Parallel()

	store := &FakeStore{err: contract.NewError(contract.ResourceDoesNotExist, "Dataset with id=9 not found")}
	service := RedmaneService{Store: store}

	response, err := service.UpdateDatasetSizeMetadata(
		context.Background(),
		&entities.MetadataUpdate{DatasetID: 9, RawFileSize: utils.PtrTo("1")},
	)
	assert.Nil(t, response)
	require.NotNil(t, err)
	assert.Equal(t, 404, err.StatusCode())
}

func TestAddRawFiles(t *testing.T) {
	t.Parallel()

	store := &FakeStore{}
	service := RedmaneService{Store: store}

	input := []*entities.RawFileCreate{{DatasetID: 1, Path: "/data/a.bam"}}

	response, err := service.AddRawFiles(context.Background(), input)
	require.Nil(t, err)
	assert.Equal(t, &entities.StatusMessage{
		Status:  "success",
		Message: "Raw files and metadata added successfully",
	}, response)
	assert.Equal(t, input, store.added)

	store.err = contract.NewDatabaseError(assert.AnError)

	response, err = service.AddRawFiles(context.Background(), input)
	assert.Nil(t, response)
	require.NotNil(t, err)
	assert.Equal(t, contract.InternalError, err.Code)
	assert.Contains(t, err.Message, "Database error: ")
}

func TestProjectIDDefaultsToZero(t *testing.T) {
	t.Parallel()

	service := RedmaneService{Store: &FakeStore{}}

	dataset, err := service.GetDatasetWithMetadata(
		context.Background(),
		&entities.GetDatasetWithMetadata{DatasetID: 4, ProjectID: utils.PtrTo[int64](2)},
	)
	require.Nil(t, err)
	assert.Equal(t, int64(4), dataset.ID)
	assert.Equal(t, int64(2), dataset.ProjectID)

	dataset, err = service.GetDatasetWithMetadata(context.Background(), &entities.GetDatasetWithMetadata{DatasetID: 4})
	require.Nil(t, err)
	assert.Equal(t, int64(0), dataset.ProjectID)
}
