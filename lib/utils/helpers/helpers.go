package helpers

import (
	"context"
	"regexp"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// matrícula: 4 a 8 dígitos isolados no texto
var badgeRegex = regexp.MustCompile(`\b\d{4,8}\b`)

// ExtractBadge devolve a primeira matrícula de funcionário presente no
// texto livre, ou vazio.
func ExtractBadge(text string) string {
	return badgeRegex.FindString(text)
}
