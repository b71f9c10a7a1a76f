package db

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"realloc-backend/config"
	"realloc-backend/models"
	dbmodels "realloc-backend/models/db"
)

func InitPreload() {
	addDefaultAccount()
	teamIDs := fillTeams()
	fillStandardTaskTemplates(teamIDs)
}

func addDefaultAccount() {
	if config.Conf.Backfill.DefaultAccountID == "" {
		log.Warn("conta administrativa padrão não configurada (BACKFILL_DEFAULT_ACCOUNT_ID), jobs de reconciliação deixarão o responsável em branco")
		return
	}
	var count int64
	err := DB.Model(&dbmodels.SystemAccount{}).
		Where("id = ?", config.Conf.Backfill.DefaultAccountID).
		Count(&count).Error
	if err != nil {
		log.WithError(err).Error("erro ao verificar conta administrativa padrão")
		return
	}
	if count > 0 {
		return
	}
	rec := dbmodels.SystemAccount{
		BaseModel: dbmodels.BaseModel{ID: config.Conf.Backfill.DefaultAccountID},
		UserName:  "sistema",
	}
	if err = DB.Create(&rec).Error; err != nil {
		log.WithError(err).Error("erro ao criar conta administrativa padrão")
	}
}

// fillTeams preenche o dicionário de equipes por setor e devolve os ids
// por setor para amarrar as tarefas padrão.
func fillTeams() map[models.Sector]string {
	teamIDs := map[models.Sector]string{}
	var existing []dbmodels.Team
	if err := DB.Find(&existing).Error; err != nil {
		log.WithError(err).Error("erro ao verificar dicionário de equipes")
		return teamIDs
	}
	if len(existing) > 0 {
		for _, team := range existing {
			if _, ok := teamIDs[team.Sector]; !ok {
				teamIDs[team.Sector] = team.ID
			}
		}
		return teamIDs
	}
	teams := []dbmodels.Team{
		{Name: "Recursos Humanos", Sector: models.SectorRH, Active: true},
		{Name: "Medicina do Trabalho", Sector: models.SectorMedicina, Active: true},
		{Name: "Treinamento e Capacitação", Sector: models.SectorTreinamento, Active: true},
	}
	for idx := range teams {
		teams[idx].ID = uuid.New().String()
		teamIDs[teams[idx].Sector] = teams[idx].ID
	}
	if err := DB.Create(&teams).Error; err != nil {
		log.WithError(err).Error("erro ao preencher dicionário de equipes")
		return map[models.Sector]string{}
	}
	return teamIDs
}

func fillStandardTaskTemplates(teamIDs map[models.Sector]string) {
	var count int64
	if err := DB.Model(&dbmodels.StandardTaskTemplate{}).Count(&count).Error; err != nil {
		log.WithError(err).Error("erro ao verificar tarefas padrão")
		return
	}
	if count > 0 {
		return
	}
	list := []dbmodels.StandardTaskTemplate{
		{Sector: models.SectorRH, Type: "ATUALIZACAO DE CTPS", Description: "Atualizar carteira de trabalho para o novo contrato", Active: true},
		{Sector: models.SectorRH, Type: "TERMO DE TRANSFERENCIA", Description: "Coletar assinatura do termo de transferência", Active: true},
		{Sector: models.SectorMedicina, Type: "ASO DE MUDANCA DE FUNCAO", Description: "Emitir ASO de mudança de função/contrato", Active: true},
		{Sector: models.SectorMedicina, Type: "EXAME PERIODICO", Description: "Verificar validade do exame periódico", Active: true},
	}
	for idx := range list {
		if teamID, ok := teamIDs[list[idx].Sector]; ok {
			id := teamID
			list[idx].TeamID = &id
		}
	}
	if err := DB.Create(&list).Error; err != nil {
		log.WithError(err).Error("erro ao preencher tarefas padrão")
	}
}
