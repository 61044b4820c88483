// internal/service/template_service.go
package service

import (
	"strings"

	"github.com/unclebandit/sparkles-site/internal/model"
)

// RenderTemplate replaces each {key} in template with data[key].
func RenderTemplate(template string, data map[string]string) string {
	result := template
	for k, v := range data {
		result = strings.ReplaceAll(result, "{"+k+"}", v)
	}
	return result
}

// ProductMessage fills the WhatsApp order template for one product.
func ProductMessage(template string, p model.Product) string {
	return RenderTemplate(template, map[string]string{
		"product": p.Name,
		"price":   p.Price,
	})
}
