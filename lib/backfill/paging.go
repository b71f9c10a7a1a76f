package backfillhandler

// nextOffset avança a paginação de uma consulta cujo filtro exclui os
// registros já atualizados: quem foi atualizado sai do resultado da
// próxima página, então só os pulados continuam ocupando posições. No dry
// run nada sai do filtro e a página inteira conta.
func nextOffset(offset, pageLen, updatedInPage int, dryRun bool) int {
	if dryRun {
		return offset + pageLen
	}
	return offset + pageLen - updatedInPage
}
