package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"realloc-backend/controllers"
	audithandler "realloc-backend/lib/audit"
	deduphandler "realloc-backend/lib/dedup"
	pdfexport "realloc-backend/lib/export/pdf"
	statushandler "realloc-backend/lib/status"
	taskderivehandler "realloc-backend/lib/task-derive"
	taskhandler "realloc-backend/lib/task"
	"realloc-backend/middleware"
	apimodels "realloc-backend/models/api"
	reallocapimodels "realloc-backend/models/api/realloc"
)

type reallocApiController struct {
	controllers.BaseAPIController
}

func InitReallocApiRouters(app *fiber.App) {
	controller := reallocApiController{}
	app.Route("realloc", func(router fiber.Router) {
		router.Post("derive", controller.derive)
		router.Post("dedup", controller.dedup)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("recompute", controller.recompute)
			idRoute.Put("dedup", controller.dedupOne)
			idRoute.Post("task", controller.addTask)
			idRoute.Get("audit", controller.audit)
			idRoute.Get("report", controller.report)
		})
	})
	app.Route("task/:id", func(router fiber.Router) {
		router.Put("complete", controller.completeTask)
		router.Put("cancel", controller.cancelTask)
		router.Get("timeline", controller.timeline)
	})
}

// Deriva as tarefas exigidas pela política. Sem reallocation_id no corpo,
// roda sobre todas as realocações abertas.
func (c *reallocApiController) derive(ctx *fiber.Ctx) error {
	var payload reallocapimodels.DeriveData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var summary reallocapimodels.DeriveSummary
	var err error
	if payload.ReallocationID != "" {
		summary, err = taskderivehandler.Instance.DeriveForRealloc(payload.ReallocationID, payload.Sectors)
	} else {
		summary, err = taskderivehandler.Instance.DeriveForOpen(ctx.UserContext(), payload.Sectors)
	}
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao derivar tarefas")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(summary))
}

func (c *reallocApiController) dedup(ctx *fiber.Ctx) error {
	summary, err := deduphandler.Instance.DeduplicateAll(ctx.UserContext(), 0)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro na deduplicação global")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(summary))
}

func (c *reallocApiController) dedupOne(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	summary, err := deduphandler.Instance.DeduplicateRealloc(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao deduplicar realocação")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(summary))
}

func (c *reallocApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := taskhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao consultar realocação")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("realocação não encontrada"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

func (c *reallocApiController) recompute(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	status, err := statushandler.Instance.Recompute(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao recalcular status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(status))
}

func (c *reallocApiController) addTask(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload reallocapimodels.ManualTaskData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	taskID, err := taskhandler.Instance.AddManual(id, payload, middleware.GetAccountID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao criar tarefa manual")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(taskID))
}

func (c *reallocApiController) audit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := audithandler.Instance.ListByRealloc(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao consultar auditoria")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *reallocApiController) report(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := taskhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao consultar realocação")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("realocação não encontrada"))
	}
	file, err := pdfexport.GenerateTaskReport(*view)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao gerar relatório")
	}
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set("Content-Disposition", "attachment; filename=relatorio_realocacao.pdf")
	return ctx.Status(fiber.StatusOK).Send(file)
}

func (c *reallocApiController) completeTask(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = taskhandler.Instance.Complete(id, middleware.GetAccountID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao concluir tarefa")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *reallocApiController) cancelTask(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload struct {
		Reason string `json:"reason"`
	}
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = taskhandler.Instance.Cancel(id, payload.Reason, middleware.GetAccountID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao cancelar tarefa")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *reallocApiController) timeline(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := taskhandler.Instance.Timeline(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Erro ao consultar linha do tempo")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
