package migration

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"Aethera-Backend/entities"
	"Aethera-Backend/pkg/factor"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.EmissionFactor{}); err != nil {
		log.Fatalf("Error migrating emission factor database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DocumentScan{}); err != nil {
		log.Fatalf("Error migrating document scan database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.EmissionRecord{}); err != nil {
		log.Fatalf("Error migrating emission record database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CompanyInfo{}); err != nil {
		log.Fatalf("Error migrating company info database: %v", err)
		return err
	}

	if err := seedFactors(db); err != nil {
		log.Fatalf("Error seeding emission factors: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

// seedFactors loads the builtin reference factors into an empty table so a
// fresh deployment resolves the common activity types immediately.
func seedFactors(db *gorm.DB) error {
	factorRepository := factor.NewFactorRepository(db)

	count, err := factorRepository.CountFactors(context.Background())
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var factors []*entities.EmissionFactor
	for activityType, entry := range factor.Builtin() {
		factors = append(factors, &entities.EmissionFactor{
			ActivityType: activityType,
			Category:     entry.Category,
			Unit:         entry.Unit,
			Factor:       entry.Factor,
			Source:       "builtin",
		})
	}

	return factorRepository.CreateFactors(context.Background(), factors)
}
