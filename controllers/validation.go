package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindingErrors превращает ошибку gin-binding'а в список ошибок по полям
// вида [{"field": "title", "error": "required"}]
func bindingErrors(err error) []gin.H {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []gin.H{{"error": err.Error()}}
	}
	out := make([]gin.H, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, gin.H{
			"field": strings.ToLower(fe.Field()),
			"error": fe.Tag(),
		})
	}
	return out
}

// isUniqueViolation распознаёт нарушение уникального индекса по тексту ошибки
// драйвера (postgres 23505, sqlite "UNIQUE constraint failed")
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
