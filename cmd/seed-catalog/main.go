package main

import (
	"fmt"
	"log"

	"drink-retail-manager/internal/config"
	"drink-retail-manager/internal/database"
	"drink-retail-manager/internal/models"
	"drink-retail-manager/internal/repositories"
)

type seedDrink struct {
	name     string
	typeName string
	brand    string
	country  string
	alcohol  float64
	volume   float64
	price    float64
}

var seedCountries = []models.Country{
	{Code: "ES", Name: "Spain"},
	{Code: "DE", Name: "Germany"},
	{Code: "BE", Name: "Belgium"},
	{Code: "GB", Name: "United Kingdom"},
	{Code: "MX", Name: "Mexico"},
}

var seedDrinks = []seedDrink{
	{"Estrella Damm", "Beer", "Damm", "ES", 5.4, 0.33, 1.80},
	{"Voll-Damm", "Beer", "Damm", "ES", 7.2, 0.33, 2.10},
	{"Duvel", "Beer", "Duvel Moortgat", "BE", 8.5, 0.33, 3.50},
	{"Rioja Crianza", "Wine", "Marques de Riscal", "ES", 13.5, 0.75, 9.90},
	{"Highland Single Malt", "Whisky", "Glenmorangie", "GB", 40.0, 0.70, 32.00},
	{"Tequila Blanco", "Tequila", "Jose Cuervo", "MX", 38.0, 0.70, 18.50},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(database.Config{Path: cfg.Database.Path})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	countryRepo := repositories.NewCountryRepository(db.DB)
	brandRepo := repositories.NewBrandRepository(db.DB)
	typeRepo := repositories.NewDrinkTypeRepository(db.DB)
	drinkRepo := repositories.NewDrinkRepository(db.DB)

	for i := range seedCountries {
		if _, err := countryRepo.GetByCode(seedCountries[i].Code); err == nil {
			continue
		}
		if err := countryRepo.Create(&seedCountries[i]); err != nil {
			log.Fatal("Failed to seed country:", err)
		}
	}

	existing, err := drinkRepo.GetAll()
	if err != nil {
		log.Fatal("Failed to list drinks:", err)
	}
	if len(existing) > 0 {
		fmt.Printf("Catalog already has %d drinks, nothing to do\n", len(existing))
		return
	}

	for _, sd := range seedDrinks {
		typeID, err := typeRepo.GetOrCreateByName(sd.typeName)
		if err != nil {
			log.Fatal("Failed to resolve drink type:", err)
		}

		brandID, err := brandRepo.GetOrCreateByName(sd.brand, sd.country)
		if err != nil {
			log.Fatal("Failed to resolve brand:", err)
		}

		drink := &models.Drink{
			Name:           sd.name,
			TypeID:         typeID,
			BrandID:        brandID,
			CountryCode:    sd.country,
			AlcoholContent: sd.alcohol,
			Volume:         sd.volume,
			Price:          sd.price,
		}
		if err := drinkRepo.Create(drink); err != nil {
			log.Fatal("Failed to seed drink:", err)
		}
	}

	fmt.Printf("Seeded %d drinks\n", len(seedDrinks))
}
