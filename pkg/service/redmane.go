package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/redmane/redmane/pkg/config"
	"github.com/redmane/redmane/pkg/contract"
	"github.com/redmane/redmane/pkg/entities"
	"github.com/redmane/redmane/pkg/store"
	"github.com/redmane/redmane/pkg/store/sql"
	"github.com/redmane/redmane/pkg/utils"
)

type RedmaneService struct {
	Store store.RedmaneStore
}

func (r RedmaneService) ListProjects(ctx context.Context) ([]*entities.Project, *contract.Error) {
	return r.Store.ListProjects(ctx)
}

func (r RedmaneService) ListDatasets(
	ctx context.Context, input *entities.ListDatasets,
) ([]*entities.Dataset, *contract.Error) {
	return r.Store.ListDatasets(ctx, input.ProjectID, input.DatasetID)
}

func (r RedmaneService) GetDatasetWithMetadata(
	ctx context.Context, input *entities.GetDatasetWithMetadata,
) (*entities.DatasetWithMetadata, *contract.Error) {
	return r.Store.GetDatasetWithMetadata(ctx, input.DatasetID, utils.ValueOr(input.ProjectID, 0))
}

func (r RedmaneService) ListPatients(
	ctx context.Context, input *entities.ListPatients,
) ([]*entities.PatientWithSampleCount, *contract.Error) {
	return r.Store.ListPatients(ctx, input.ProjectID)
}

func (r RedmaneService) GetPatientsMetadata(
	ctx context.Context, input *entities.GetPatientsMetadata,
) ([]*entities.PatientWithSamples, *contract.Error) {
	return r.Store.GetPatientsWithSamples(ctx, utils.ValueOr(input.ProjectID, 0), input.PatientID)
}

func (r RedmaneService) GetSamples(ctx context.Context, input *entities.GetSamples) ([]*entities.Sample, *contract.Error) {
	return r.Store.GetSamples(ctx, utils.ValueOr(input.ProjectID, 0), input.SampleID)
}

func (r RedmaneService) ListRawFilesWithMetadata(
	ctx context.Context, input *entities.ListRawFilesWithMetadata,
) ([]*entities.RawFileResponse, *contract.Error) {
	return r.Store.ListRawFilesWithMetadata(ctx, input.DatasetID)
}

func (r RedmaneService) AddRawFiles(
	ctx context.Context, input []*entities.RawFileCreate,
) (*entities.StatusMessage, *contract.Error) {
	if err := r.Store.AddRawFiles(ctx, input); err != nil {
		return nil, err
	}

	logrus.WithContext(ctx).Debugf("added %d raw files", len(input))

	return &entities.StatusMessage{
		Status:  "success",
		Message: "Raw files and metadata added successfully",
	}, nil
}

// UpdateDatasetSizeMetadata writes the supplied size fields and echoes the request.
// Fields left out of the request keep their stored value.
func (r RedmaneService) UpdateDatasetSizeMetadata(
	ctx context.Context, input *entities.MetadataUpdate,
) (*entities.MetadataUpdate, *contract.Error) {
	if err := r.Store.UpsertDatasetMetadata(ctx, input.DatasetID, input.Values()); err != nil {
		return nil, err
	}

	return input, nil
}

func NewRedmaneService(logger *logrus.Logger, cfg *config.Config) (*RedmaneService, error) {
	store, err := sql.NewSQLStore(logger, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("could not create new sql store: %w", err)
	}

	return &RedmaneService{Store: store}, nil
}
