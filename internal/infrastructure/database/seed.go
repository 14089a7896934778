package database

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"vetclinic-backend/internal/domain/entity"
)

// SeedCatalogs populates the treatment and product catalogs when their
// tables are empty. Re-running against a populated database is a no-op.
func SeedCatalogs(db *gorm.DB) error {
	if err := seedTreatments(db); err != nil {
		return err
	}
	return seedProducts(db)
}

func seedTreatments(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Treatment{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	treatments := []entity.Treatment{
		{Type: "Tratamientos básicos", Name: "Análisis de sangre", Description: "Análisis de sangre completo", Price: decimal.NewFromFloat(50.0)},
		{Type: "Tratamientos básicos", Name: "Análisis hormonales", Description: "Detección de niveles hormonales", Price: decimal.NewFromFloat(70.0)},
		{Type: "Tratamientos básicos", Name: "Vacunación", Description: "Vacunas generales", Price: decimal.NewFromFloat(30.0)},
		{Type: "Tratamientos básicos", Name: "Desparasitación", Description: "Eliminación de parásitos internos y externos", Price: decimal.NewFromFloat(25.0)},
		{Type: "Revisión general", Name: "Revisión general", Description: "Revisión completa del animal", Price: decimal.NewFromFloat(60.0)},
		{Type: "Revisión específica", Name: "Revisión cardiológica", Description: "Examen especializado del corazón", Price: decimal.NewFromFloat(120.0)},
		{Type: "Revisión específica", Name: "Revisión cutánea", Description: "Evaluación de la piel y pelaje", Price: decimal.NewFromFloat(80.0)},
		{Type: "Revisión específica", Name: "Revisión broncológica", Description: "Revisión de vías respiratorias", Price: decimal.NewFromFloat(90.0)},
		{Type: "Ecografías", Name: "Ecografía abdominal", Description: "Ecografía de la cavidad abdominal", Price: decimal.NewFromFloat(150.0)},
		{Type: "Ecografías", Name: "Ecografía cardíaca", Description: "Ecografía para evaluar el corazón", Price: decimal.NewFromFloat(180.0)},
		{Type: "Tratamientos dentales", Name: "Limpieza bucal", Description: "Limpieza profunda de dientes", Price: decimal.NewFromFloat(100.0)},
		{Type: "Tratamientos dentales", Name: "Extracción de piezas dentales", Description: "Extracción quirúrgica de dientes dañados", Price: decimal.NewFromFloat(200.0)},
		{Type: "Cirugía", Name: "Castración", Description: "Castración quirúrgica", Price: decimal.NewFromFloat(150.0)},
		{Type: "Cirugía", Name: "Cirugía abdominal", Description: "Procedimientos quirúrgicos abdominales", Price: decimal.NewFromFloat(300.0)},
		{Type: "Cirugía", Name: "Cirugía cardíaca", Description: "Cirugía en el corazón", Price: decimal.NewFromFloat(500.0)},
		{Type: "Cirugía", Name: "Cirugía articular y ósea", Description: "Reparación de articulaciones y huesos", Price: decimal.NewFromFloat(400.0)},
		{Type: "Cirugía", Name: "Cirugía de hernias", Description: "Reparación de hernias", Price: decimal.NewFromFloat(250.0)},
	}

	if err := db.Create(&treatments).Error; err != nil {
		return err
	}

	logrus.Infof("Seeded %d treatments", len(treatments))
	return nil
}

func seedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []entity.Product{
		{Category: "Vitaminas", Brand: "PetVita", Name: "Vitamina A+", Description: "Suplemento de vitamina A", Price: decimal.NewFromFloat(10.0), Stock: 100},
		{Category: "Cremas", Brand: "PetCare", Name: "Crema Analgésica", Description: "Para aliviar el dolor", Price: decimal.NewFromFloat(20.0), Stock: 50},
		{Category: "Desparasitador", Brand: "SafePet", Name: "Desparasitador Plus", Description: "Para perros", Price: decimal.NewFromFloat(15.0), Stock: 200},
		{Category: "Belleza", Brand: "AnimalLook", Name: "Champú para perros", Description: "Champú suave", Price: decimal.NewFromFloat(12.0), Stock: 80},
	}

	if err := db.Create(&products).Error; err != nil {
		return err
	}

	logrus.Infof("Seeded %d products", len(products))
	return nil
}
