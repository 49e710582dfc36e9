package contract

import (
	"context"

	"github.com/redmane/redmane/pkg/entities"
)

type Service interface {
	ListProjects(ctx context.Context) ([]*entities.Project, *Error)
	ListDatasets(ctx context.Context, input *entities.ListDatasets) ([]*entities.Dataset, *Error)
	GetDatasetWithMetadata(
		ctx context.Context, input *entities.GetDatasetWithMetadata,
	) (*entities.DatasetWithMetadata, *Error)
	ListPatients(ctx context.Context, input *entities.ListPatients) ([]*entities.PatientWithSampleCount, *Error)
	GetPatientsMetadata(
		ctx context.Context, input *entities.GetPatientsMetadata,
	) ([]*entities.PatientWithSamples, *Error)
	GetSamples(ctx context.Context, input *entities.GetSamples) ([]*entities.Sample, *Error)
	ListRawFilesWithMetadata(
		ctx context.Context, input *entities.ListRawFilesWithMetadata,
	) ([]*entities.RawFileResponse, *Error)
	AddRawFiles(ctx context.Context, input []*entities.RawFileCreate) (*entities.StatusMessage, *Error)
	UpdateDatasetSizeMetadata(ctx context.Context, input *entities.MetadataUpdate) (*entities.MetadataUpdate, *Error)
}

// Authenticator resolves the user behind an Authorization header.
type Authenticator interface {
	Authenticate(ctx context.Context, authorization string) (*entities.AuthUser, *Error)
}
