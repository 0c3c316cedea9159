package referrals

import "github.com/axelse03-gif/reybanpac/models"

// recentActivity and achievements are the same for every referred profile.
var recentActivity = []models.Activity{
	{
		Icon:  "thumb_up",
		Tone:  "success",
		Title: "Buen Trabajo",
		Body:  "Reconocimiento por iniciativa en la optimización de procesos de cosecha.",
		Date:  "12 de Agosto, 2024",
	},
	{
		Icon:  "warning",
		Tone:  "danger",
		Title: "Alerta de Seguridad",
		Body:  "Incumplimiento menor del protocolo de uso de EPP. Se realizó retroalimentación.",
		Date:  "25 de Julio, 2024",
	},
}

var achievements = []models.Badge{
	{Icon: "military_tech", Label: "Trabajo en Equipo", Tier: "accent"},
	{Icon: "school", Label: "Curso de Seguridad", Tier: "primary"},
	{Icon: "lock", Label: "Puntualidad Perfecta", Tier: "locked"},
}

func reybancashGoal(progress int) models.Milestone {
	return models.Milestone{Title: "Meta Reybancash", Progress: progress, From: "Contratación", To: "1 año"}
}
