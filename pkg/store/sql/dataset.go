package sql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/redmane/redmane/pkg/contract"
	"github.com/redmane/redmane/pkg/entities"
	"github.com/redmane/redmane/pkg/store/sql/model"
)

func (s Store) ListDatasets(
	ctx context.Context, projectID, datasetID *int64,
) ([]*entities.Dataset, *contract.Error) {
	query := s.db.WithContext(ctx).Model(&model.Dataset{})

	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}

	if datasetID != nil {
		query = query.Where("id = ?", *datasetID)
	}

	var datasets []model.Dataset
	if err := query.Order("id").Find(&datasets).Error; err != nil {
		return nil, contract.NewDatabaseError(err)
	}

	result := make([]*entities.Dataset, len(datasets))
	for i, dataset := range datasets {
		result[i] = dataset.ToEntity()
	}

	return result, nil
}

func (s Store) GetDatasetWithMetadata(
	ctx context.Context, datasetID, projectID int64,
) (*entities.DatasetWithMetadata, *contract.Error) {
	var dataset model.Dataset

	err := s.db.WithContext(ctx).
		Preload("Metadata", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		Where("id = ? AND project_id = ?", datasetID, projectID).
		Take(&dataset).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, contract.NewError(contract.ResourceDoesNotExist, "Dataset not found")
		}

		return nil, contract.NewDatabaseError(err)
	}

	metadata := make([]entities.DatasetMetadata, len(dataset.Metadata))
	for i, m := range dataset.Metadata {
		metadata[i] = m.ToEntity()
	}

	return &entities.DatasetWithMetadata{
		Dataset:  *dataset.ToEntity(),
		Metadata: metadata,
	}, nil
}

func (s Store) UpsertDatasetMetadata(
	ctx context.Context, datasetID int64, values []entities.MetadataValue,
) *contract.Error {
	err := s.db.WithContext(ctx).Transaction(func(transaction *gorm.DB) error {
		if err := transaction.Select("id").Where("id = ?", datasetID).Take(&model.Dataset{}).Error; err != nil {
			return err
		}

		for _, value := range values {
			if err := upsertDatasetMetadata(transaction, datasetID, value); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return contract.NewError(
				contract.ResourceDoesNotExist,
				fmt.Sprintf("Dataset with id=%d not found", datasetID),
			)
		}

		return contract.NewDatabaseError(err)
	}

	return nil
}

// upsertDatasetMetadata overwrites the value of the oldest row holding the key,
// or inserts the key when the dataset has none.
func upsertDatasetMetadata(transaction *gorm.DB, datasetID int64, value entities.MetadataValue) error {
	var existing model.DatasetMetadata

	lookup := transaction.
		Where(&model.DatasetMetadata{DatasetID: datasetID, Key: value.Key}).
		Order("id").
		Limit(1).
		Find(&existing)
	if lookup.Error != nil {
		return fmt.Errorf("failed to look up dataset metadata %q: %w", value.Key, lookup.Error)
	}

	if lookup.RowsAffected == 0 {
		if err := transaction.Create(&model.DatasetMetadata{
			DatasetID: datasetID,
			Key:       value.Key,
			Value:     value.Value,
		}).Error; err != nil {
			return fmt.Errorf("failed to insert dataset metadata %q: %w", value.Key, err)
		}

		return nil
	}

	if err := transaction.Model(&existing).Update("value", value.Value).Error; err != nil {
		return fmt.Errorf("failed to update dataset metadata %q: %w", value.Key, err)
	}

	return nil
}
