package model

import "github.com/redmane/redmane/pkg/entities"

const TableNameProject = "projects"

// Project mapped from table <projects>.
type Project struct {
	ID       int64     `db:"id"     gorm:"column:id;primaryKey;autoIncrement:true"`
	Name     string    `db:"name"   gorm:"column:name;not null"`
	Status   *string   `db:"status" gorm:"column:status"`
	Datasets []Dataset `gorm:"foreignKey:ProjectID"`
	Patients []Patient `gorm:"foreignKey:ProjectID"`
}

func (Project) TableName() string {
	return TableNameProject
}

func (p Project) ToEntity() *entities.Project {
	return &entities.Project{
		ID:     p.ID,
		Name:   p.Name,
		Status: p.Status,
	}
}
