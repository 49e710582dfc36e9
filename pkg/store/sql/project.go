package sql

import (
	"context"

	"github.com/redmane/redmane/pkg/contract"
	"github.com/redmane/redmane/pkg/entities"
	"github.com/redmane/redmane/pkg/store/sql/model"
)

func (s Store) ListProjects(ctx context.Context) ([]*entities.Project, *contract.Error) {
	var projects []model.Project
	if err := s.db.WithContext(ctx).Order("id").Find(&projects).Error; err != nil {
		return nil, contract.NewDatabaseError(err)
	}

	result := make([]*entities.Project, len(projects))
	for i, project := range projects {
		result[i] = project.ToEntity()
	}

	return result, nil
}
