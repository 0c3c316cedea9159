package home

import "github.com/axelse03-gif/reybanpac/models"

var employee = models.Profile{
	FirstName: "Samuel",
	Name:      "Samuel Pincay",
	Role:      "Ingeniero Agropecuario – Administrador de Fincas",
	Company:   "REYBANPAC",
	Location:  "Hacienda Sulema 2 (1 año)",
	TeamSize:  162,
	Menu: []models.MenuItem{
		{Icon: "trending_up", Label: "Progreso en la Empresa"},
		{Icon: "history", Label: "Actividad Reciente"},
		{Icon: "folder_open", Label: "Mis documentos", Path: "/documents"},
		{Icon: "workspace_premium", Label: "Trayectoria"},
	},
	Badges: []models.Badge{
		{Icon: "groups", Label: "Trabajo en Equipo", Tier: "accent"},
		{Icon: "security", Label: "Gestión de Seguridad", Tier: "accent"},
		{Icon: "verified", Label: "Responsabilidad", Tier: "accent"},
		{Icon: "school", Label: "Mentoría de Jóvenes", Tier: "legendary"},
	},
	Quotes: []string{
		"REYBANPAC es una gran escuela, las oportunidades siempre están.",
		"Madrugar y la cultura del esfuerzo son claves, igual que la planificación.",
		"Me gusta involucrar y motivar jóvenes, dándoles tareas accesibles antes de roles exigentes.",
		"En este negocio el resultado cuenta más que el título; ser responsable y honesto abre oportunidades.",
	},
}

// quickAccess are the four tiles of the home screen.
var quickAccess = []models.MenuItem{
	{Icon: "person", Label: "Perfil Digital", Path: "/profile"},
	{Icon: "groups", Label: "Referidos", Path: "/referrals"},
	{Icon: "description", Label: "Documentos", Path: "/documents"},
	{Icon: "smart_toy", Label: "bot JuniorPac", Path: "/chatbot"},
}

var emergencyContact = models.MenuItem{Icon: "call", Label: "Contacto de Emergencia"}
