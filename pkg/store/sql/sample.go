package sql

import (
	"context"
	"fmt"
	"strings"

	"github.com/redmane/redmane/pkg/contract"
	"github.com/redmane/redmane/pkg/entities"
	"github.com/redmane/redmane/pkg/grouping"
	"github.com/redmane/redmane/pkg/store/sql/model"
)

var sampleColumns = []string{
	"s.id AS sample_id",
	"s.patient_id AS sample_patient_id",
	"s.ext_sample_id",
	"s.ext_sample_url",
}

func (s Store) GetSamples(ctx context.Context, projectID, sampleID int64) ([]*entities.Sample, *contract.Error) {
	columns := make([]string, 0, len(sampleColumns)+len(patientColumns)+3)
	columns = append(columns, sampleColumns...)
	columns = append(columns,
		"sm.id AS metadata_id",
		s.quote("sm", "key")+" AS metadata_key",
		s.quote("sm", "value")+" AS metadata_value",
	)
	columns = append(columns, patientColumns...)

	query := s.db.WithContext(ctx).
		Table(model.TableNameSample+" s").
		Select(strings.Join(columns, ", ")).
		Joins(fmt.Sprintf("LEFT JOIN %s sm ON sm.sample_id = s.id", model.TableNameSampleMetadata)).
		Joins(fmt.Sprintf("JOIN %s p ON p.id = s.patient_id", model.TableNamePatient)).
		Where("p.project_id = ?", projectID)

	if sampleID != 0 {
		query = query.Where("s.id = ?", sampleID)
	}

	var rows []model.SampleWithPatientRow
	if err := query.Order("s.id, sm.id").Scan(&rows).Error; err != nil {
		return nil, contract.NewDatabaseError(err)
	}

	groups := grouping.GroupSorted(
		rows,
		func(r model.SampleWithPatientRow) int64 { return r.SampleID },
		model.SampleWithPatientRow.Parent,
		func(r model.SampleWithPatientRow) (entities.SampleMetadata, bool) { return r.Metadata() },
	)

	return grouping.Map(groups, func(parent model.SampleWithPatient, metadata []entities.SampleMetadata) *entities.Sample {
		return &entities.Sample{
			SampleWithoutPatient: parent.Sample.ToEntity(metadata),
			Patient:              parent.Patient.ToEntity(),
		}
	}), nil
}
