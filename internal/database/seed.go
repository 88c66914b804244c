package database

import (
	"time"

	"github.com/thenoetrevino/tablero/internal/models"
)

// SeedSnapshot returns the sample board written on first start.
// Cards filed under lists that are not configured get re-homed by the store.
func SeedSnapshot(now time.Time) models.Snapshot {
	ts := models.FormatCommentTime(now)
	note := func(text string) models.Comment {
		return models.Comment{Timestamp: ts, Text: text}
	}

	return models.Snapshot{
		"backlog": {
			{
				ID:          "card-1",
				Title:       "Diseñar interfaz de usuario para módulo de reportes",
				Description: "Crear wireframes y mockups de alta fidelidad.",
				Assigned:    "Diseño",
				Priority:    models.PriorityHigh,
				Comments:    []models.Comment{note("Tarea inicial.")},
			},
			{
				ID:          "card-2",
				Title:       "Investigar nuevas fuentes de datos para el dashboard",
				Description: "Explorar APIs de redes sociales para métricas de engagement.",
				Assigned:    "Datos",
				Priority:    models.PriorityMedium,
				Comments:    []models.Comment{note("Inicio de la investigación.")},
			},
		},
		"wip": {
			{
				ID:          "card-3",
				Title:       "Desarrollar módulo de autenticación de usuarios",
				Description: "Implementar login/logout y gestión de sesiones.",
				Assigned:    "Código",
				Priority:    models.PriorityCritical,
				Comments:    []models.Comment{note("Iniciado el desarrollo de la API de autenticación.")},
			},
		},
		"review": {},
		"done": {
			{
				ID:          "card-4",
				Title:       "Revisión final de propuesta comercial",
				Description: "Documento de propuesta para el cliente X.",
				Assigned:    "Contacto",
				Priority:    models.PriorityHigh,
				Comments: []models.Comment{
					note("Documento enviado a revisión el 01/07."),
					note("Aprobado por gerencia. Listo para enviar al cliente."),
				},
			},
		},
	}
}
