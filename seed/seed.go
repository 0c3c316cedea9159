package seed

import (
	"fmt"

	"github.com/axelse03-gif/reybanpac/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MockReferrals are the records shown in "Recomienda y Gana". Status and
// progress are set independently.
var MockReferrals = []models.Referral{
	{ID: 1, Name: "Carlos López", Date: "Pendiente desde el 17/11/2025", Status: models.StatusPending, Progress: 10, JobTitle: "Operario"},
	{ID: 2, Name: "Jonathan Alcaraz", Date: "Referido el 15/05/2024", Status: models.StatusActive, Progress: 66, JobTitle: "Supervisor de Campo"},
	{
		ID:       3,
		Name:     "Axel Serrudo",
		Date:     "Referido el 15/05/2024",
		Status:   models.StatusActive,
		Progress: 75,
		JobTitle: "Trabajador Agrícola",
		ImageURL: "https://lh3.googleusercontent.com/aida-public/AB6AXuA7cpbTlBMevBR68iqmANwwSRxOgFZ4QcUkQigRA36URSAlRhEtJTP6ar1iKDxW4sSo8zNyPqchlkp3RZfX6W-rzSlIIp6fqLv0d-dzq674IHtIOs5p_Gup6XLSTQLPLfg-6ZINKQntygF-s8iOCvFFZbEOuI6K-YjraQcxSWaSzKXn3R8vnigJv83b_r4ec5wqY-QrKifrMcwuq88K4WxfwWL0CintFUfBcmXtQ6TTF3WCYp9Azjo0LWokhubUhj9DMU2_JgQqJuDI",
		HireDate: "Contratado el 15/06/2024",
	},
	{ID: 4, Name: "Rocio Barrios Paez", Date: "Avanzados hace más de un año", Status: models.StatusAdvanced, Progress: 100, JobTitle: "Analista de Calidad"},
	{ID: 5, Name: "Maximiliano Loza", Date: "Avanzados hace más de un año", Status: models.StatusAdvanced, Progress: 100, JobTitle: "Jefe de Finca"},
}

// MockNews feeds the home screen carousel.
var MockNews = []models.NewsItem{
	{Title: "Nuevo Récord de Producción", Summary: "Alcanzamos un hito histórico en la producción de este trimestre.", Position: 1},
	{Title: "Programa de Mentores", Summary: "Lanzamiento del programa JuniorPac para nuevos talentos.", Position: 2},
	{Title: "Sostenibilidad Primero", Summary: "Nuevas iniciativas para reducir nuestra huella de carbono.", Position: 3},
}

// SeedReferrals inserts MockReferrals unless the table already has rows.
func SeedReferrals(db *gorm.DB, logger *zap.Logger) error {
	return seedTable(db, logger, "referrals", append([]models.Referral(nil), MockReferrals...))
}

// SeedNews inserts MockNews unless the table already has rows.
func SeedNews(db *gorm.DB, logger *zap.Logger) error {
	return seedTable(db, logger, "news", append([]models.NewsItem(nil), MockNews...))
}

func seedTable[T any](db *gorm.DB, logger *zap.Logger, name string, rows []T) error {
	var count int64
	if err := db.Model(new(T)).Count(&count).Error; err != nil {
		return fmt.Errorf("count %s: %w", name, err)
	}
	if count > 0 {
		logger.Info("table already seeded, skipping", zap.String("table", name), zap.Int64("rows", count))
		return nil
	}

	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("seed %s: %w", name, err)
	}

	logger.Info("table seeded", zap.String("table", name), zap.Int("rows", len(rows)))
	return nil
}
