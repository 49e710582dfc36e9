package sql

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/redmane/redmane/pkg/contract"
	"github.com/redmane/redmane/pkg/entities"
	"github.com/redmane/redmane/pkg/grouping"
	"github.com/redmane/redmane/pkg/store/sql/model"
)

var patientColumns = []string{
	"p.id AS patient_id",
	"p.project_id",
	"p.ext_patient_id",
	"p.ext_patient_url",
	"p.public_patient_id",
}

func (s Store) ListPatients(
	ctx context.Context, projectID *int64,
) ([]*entities.PatientWithSampleCount, *contract.Error) {
	sampleCount := fmt.Sprintf(
		"(SELECT COUNT(*) FROM %s s WHERE s.patient_id = p.id) AS sample_count",
		model.TableNameSample,
	)

	query := s.db.WithContext(ctx).
		Table(model.TableNamePatient + " p").
		Select(strings.Join(append(patientColumns, sampleCount), ", "))

	if projectID != nil {
		query = query.Where("p.project_id = ?", *projectID)
	}

	var rows []model.PatientWithSampleCountRow
	if err := query.Order("p.id").Scan(&rows).Error; err != nil {
		return nil, contract.NewDatabaseError(err)
	}

	result := make([]*entities.PatientWithSampleCount, len(rows))
	for i, row := range rows {
		result[i] = row.ToEntity()
	}

	return result, nil
}

func (s Store) GetPatientsWithSamples(
	ctx context.Context, projectID, patientID int64,
) ([]*entities.PatientWithSamples, *contract.Error) {
	database := s.db.WithContext(ctx)

	query := database.
		Table(model.TableNamePatient+" p").
		Select(strings.Join(append(patientColumns,
			"pm.id AS metadata_id",
			s.quote("pm", "key")+" AS metadata_key",
			s.quote("pm", "value")+" AS metadata_value",
		), ", ")).
		Joins(fmt.Sprintf("LEFT JOIN %s pm ON pm.patient_id = p.id", model.TableNamePatientMetadata)).
		Where("p.project_id = ?", projectID)

	if patientID != 0 {
		query = query.Where("p.id = ?", patientID)
	}

	var rows []model.PatientMetadataRow
	if err := query.Order("p.id, pm.id").Scan(&rows).Error; err != nil {
		return nil, contract.NewDatabaseError(err)
	}

	groups := grouping.GroupSorted(
		rows,
		func(r model.PatientMetadataRow) int64 { return r.PatientID },
		func(r model.PatientMetadataRow) model.PatientColumns { return r.PatientColumns },
		model.PatientMetadataRow.Metadata,
	)

	patients := make([]*entities.PatientWithSamples, len(groups))

	for i, group := range groups {
		samples, err := s.getPatientSamples(database, group.Parent.PatientID)
		if err != nil {
			return nil, contract.NewDatabaseError(err)
		}

		patients[i] = &entities.PatientWithSamples{
			Patient:  group.Parent.ToEntity(),
			Metadata: group.Children,
			Samples:  samples,
		}
	}

	return patients, nil
}

// getPatientSamples returns the samples of a patient with their metadata.
func (s Store) getPatientSamples(database *gorm.DB, patientID int64) ([]entities.SampleWithoutPatient, error) {
	var rows []model.SampleMetadataRow

	err := database.
		Table(model.TableNameSample+" s").
		Select(strings.Join(append(sampleColumns,
			"sm.id AS metadata_id",
			s.quote("sm", "key")+" AS metadata_key",
			s.quote("sm", "value")+" AS metadata_value",
		), ", ")).
		Joins(fmt.Sprintf("LEFT JOIN %s sm ON sm.sample_id = s.id", model.TableNameSampleMetadata)).
		Where("s.patient_id = ?", patientID).
		Order("s.id, sm.id").
		Scan(&rows).
		Error
	if err != nil {
		return nil, fmt.Errorf("failed to get samples of patient %d: %w", patientID, err)
	}

	groups := grouping.GroupSorted(
		rows,
		func(r model.SampleMetadataRow) int64 { return r.SampleID },
		func(r model.SampleMetadataRow) model.SampleColumns { return r.SampleColumns },
		model.SampleMetadataRow.Metadata,
	)

	return grouping.Map(groups, model.SampleColumns.ToEntity), nil
}
