package sql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/redmane/redmane/pkg/contract"
	"github.com/redmane/redmane/pkg/entities"
	"github.com/redmane/redmane/pkg/store/sql/model"
	"github.com/redmane/redmane/pkg/utils"
)

// ListRawFilesWithMetadata returns the raw files of a dataset that carry a sample_id
// metadata entry. The entry is resolved to a sample in Go rather than in the join,
// as its value is stored as text.
func (s Store) ListRawFilesWithMetadata(
	ctx context.Context, datasetID int64,
) ([]*entities.RawFileResponse, *contract.Error) {
	database := s.db.WithContext(ctx)

	var rows []model.RawFileSampleRow

	err := database.
		Table(model.TableNameRawFile+" rf").
		Select("rf.id, rf.path, rfm.metadata_value AS sample_id").
		Joins(fmt.Sprintf("JOIN %s rfm ON rfm.raw_file_id = rf.id", model.TableNameRawFileMetadata)).
		Where("rf.dataset_id = ? AND rfm.metadata_key = ?", datasetID, entities.SampleIDKey).
		Order("rf.id, rfm.metadata_id").
		Scan(&rows).
		Error
	if err != nil {
		return nil, contract.NewDatabaseError(err)
	}

	sampleIDs := make([]int64, 0, len(rows))

	for _, row := range rows {
		if id, ok := utils.ParseID(row.SampleID); ok {
			sampleIDs = append(sampleIDs, id)
		}
	}

	samples, err := getSamplesByID(database, sampleIDs)
	if err != nil {
		return nil, contract.NewDatabaseError(err)
	}

	result := make([]*entities.RawFileResponse, len(rows))

	for i, row := range rows {
		rawFile := &entities.RawFileResponse{
			ID:             row.ID,
			Path:           row.Path,
			SampleID:       row.SampleID,
			SampleMetadata: make([]entities.SampleMetadata, 0),
		}

		if id, ok := utils.ParseID(row.SampleID); ok {
			if sample, ok := samples[id]; ok {
				rawFile.ExtSampleID = utils.PtrTo(sample.ExtSampleID)
				for _, m := range sample.Metadata {
					rawFile.SampleMetadata = append(rawFile.SampleMetadata, m.ToEntity())
				}
			}
		}

		result[i] = rawFile
	}

	return result, nil
}

// getSamplesByID loads the given samples with their metadata, keyed by sample id.
func getSamplesByID(database *gorm.DB, ids []int64) (map[int64]model.Sample, error) {
	samples := make(map[int64]model.Sample, len(ids))
	if len(ids) == 0 {
		return samples, nil
	}

	var found []model.Sample

	err := database.
		Preload("Metadata", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		Where("id IN ?", ids).
		Find(&found).
		Error
	if err != nil {
		return nil, fmt.Errorf("failed to get samples: %w", err)
	}

	for _, sample := range found {
		samples[sample.ID] = sample
	}

	return samples, nil
}

func (s Store) AddRawFiles(ctx context.Context, rawFiles []*entities.RawFileCreate) *contract.Error {
	if err := s.db.WithContext(ctx).Transaction(func(transaction *gorm.DB) error {
		for _, input := range rawFiles {
			rawFile := model.NewRawFileFromEntity(input)
			if err := transaction.Create(&rawFile).Error; err != nil {
				return fmt.Errorf("failed to insert raw file %q: %w", rawFile.Path, err)
			}
		}

		return nil
	}); err != nil {
		return contract.NewDatabaseError(err)
	}

	return nil
}
