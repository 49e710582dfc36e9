package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/redmane/redmane/pkg/contract"
	"github.com/redmane/redmane/pkg/entities"
)

func registerRedmaneServiceRoutes(
	service contract.Service, parser contract.HTTPRequestParser, app *fiber.App,
) {
	app.Get("/projects", func(ctx *fiber.Ctx) error {
		output, err := service.ListProjects(ctx.UserContext())
		if err != nil {
			return err
		}

		return ctx.JSON(output)
	})

	app.Get("/datasets", func(ctx *fiber.Ctx) error {
		var input entities.ListDatasets
		if err := parser.ParseQuery(ctx, &input); err != nil {
			return err
		}

		output, err := service.ListDatasets(ctx.UserContext(), &input)
		if err != nil {
			return err
		}

		return ctx.JSON(output)
	})

	app.Get("/datasets_with_metadata/:dataset_id", func(ctx *fiber.Ctx) error {
		var input entities.GetDatasetWithMetadata
		if err := parser.ParseRequest(ctx, &input); err != nil {
			return err
		}

		output, err := service.GetDatasetWithMetadata(ctx.UserContext(), &input)
		if err != nil {
			return err
		}

		return ctx.JSON(output)
	})

	app.Get("/patients", func(ctx *fiber.Ctx) error {
		var input entities.ListPatients
		if err := parser.ParseQuery(ctx, &input); err != nil {
			return err
		}

		output, err := service.ListPatients(ctx.UserContext(), &input)
		if err != nil {
			return err
		}

		return ctx.JSON(output)
	})

	app.Get("/patients_metadata/:patient_id", func(ctx *fiber.Ctx) error {
		var input entities.GetPatientsMetadata
		if err := parser.ParseRequest(ctx, &input); err != nil {
			return err
		}

		output, err := service.GetPatientsMetadata(ctx.UserContext(), &input)
		if err != nil {
			return err
		}

		return ctx.JSON(output)
	})

	app.Get("/samples/:sample_id", func(ctx *fiber.Ctx) error {
		var input entities.GetSamples
		if err := parser.ParseRequest(ctx, &input); err != nil {
			return err
		}

		output, err := service.GetSamples(ctx.UserContext(), &input)
		if err != nil {
			return err
		}

		return ctx.JSON(output)
	})

	app.Get("/raw_files_with_metadata/:dataset_id", func(ctx *fiber.Ctx) error {
		var input entities.ListRawFilesWithMetadata
		if err := parser.ParseRequest(ctx, &input); err != nil {
			return err
		}

		output, err := service.ListRawFilesWithMetadata(ctx.UserContext(), &input)
		if err != nil {
			return err
		}

		return ctx.JSON(output)
	})

	app.Post("/add_raw_files", func(ctx *fiber.Ctx) error {
		var input []*entities.RawFileCreate
		if err := parser.ParseBody(ctx, &input); err != nil {
			return err
		}

		output, err := service.AddRawFiles(ctx.UserContext(), input)
		if err != nil {
			return err
		}

		return ctx.JSON(output)
	})

	app.Put("/datasets_metadata/size_update", func(ctx *fiber.Ctx) error {
		var input entities.MetadataUpdate
		if err := parser.ParseBody(ctx, &input); err != nil {
			return err
		}

		output, err := service.UpdateDatasetSizeMetadata(ctx.UserContext(), &input)
		if err != nil {
			return err
		}

		return ctx.JSON(output)
	})
}

func registerAuthRoutes(authenticator contract.Authenticator, app *fiber.App) {
	app.Get("/auth", func(ctx *fiber.Ctx) error {
		output, err := authenticator.Authenticate(ctx.UserContext(), ctx.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}

		return ctx.JSON(output)
	})
}
