package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"realloc-backend/controllers"
	backfillhandler "realloc-backend/lib/backfill"
	xlsexport "realloc-backend/lib/export/xls"
	apimodels "realloc-backend/models/api"
	backfillapimodels "realloc-backend/models/api/backfill"
)

type backfillApiController struct {
	controllers.BaseAPIController
}

func InitBackfillApiRouters(app *fiber.App) {
	controller := backfillApiController{}
	app.Route("backfill", func(router fiber.Router) {
		router.Post(":job", controller.run)
		router.Post(":job/xls", controller.runXls)
	})
}

func (c *backfillApiController) run(ctx *fiber.Ctx) error {
	job := ctx.Params("job")
	var opts backfillapimodels.RunOptions
	if err := c.BodyParser(ctx, &opts); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	summary, err := backfillhandler.Instance.Run(ctx.UserContext(), job, opts)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("job", job), err, "Erro ao executar job de reconciliação")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(summary))
}

// Mesma execução, devolvendo o resumo como planilha.
func (c *backfillApiController) runXls(ctx *fiber.Ctx) error {
	job := ctx.Params("job")
	var opts backfillapimodels.RunOptions
	if err := c.BodyParser(ctx, &opts); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	summary, err := backfillhandler.Instance.Run(ctx.UserContext(), job, opts)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("job", job), err, "Erro ao executar job de reconciliação")
	}
	buf, err := xlsexport.Instance.ExportBackfillSummary([]backfillapimodels.Summary{summary})
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("job", job), err, "Erro ao exportar resumo")
	}
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", "attachment; filename=reconciliacao.xlsx")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
