package inventory

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"autohub/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Car{}))
	return db
}

func seedCars(t *testing.T, db *gorm.DB) {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mileage := func(v int64) *int64 { return &v }
	cars := []models.Car{
		{Make: "Toyota", Model: "Camry", Year: 2022, Price: 15000, Mileage: mileage(40000),
			BodyType: models.BodySedan, FuelType: models.FuelPetrol, Transmission: models.TransmissionAutomatic,
			Condition: models.ConditionForeignUsed, Status: models.StatusAvailable, CreatedAt: base},
		{Make: "Toyota", Model: "Land Cruiser", Year: 2023, Price: 80000, Mileage: mileage(10000),
			BodyType: models.BodySUV, FuelType: models.FuelDiesel, Transmission: models.TransmissionAutomatic,
			Condition: models.ConditionBrandNew, Status: models.StatusAvailable, CreatedAt: base.Add(24 * time.Hour)},
		{Make: "Honda", Model: "Civic", Year: 2020, Price: 9000, Mileage: mileage(70000),
			BodyType: models.BodySedan, FuelType: models.FuelPetrol, Transmission: models.TransmissionManual,
			Condition: models.ConditionLocalUsed, Status: models.StatusAvailable, CreatedAt: base.Add(48 * time.Hour)},
		{Make: "Mercedes-Benz", Model: "GLE", Year: 2023, Price: 60000, Mileage: mileage(5000),
			BodyType: models.BodySUV, FuelType: models.FuelHybrid, Transmission: models.TransmissionAutomatic,
			Condition: models.ConditionForeignUsed, Status: models.StatusReserved, CreatedAt: base.Add(72 * time.Hour)},
		{Make: "Lexus", Model: "RX 350", Year: 2021, Price: 35000, Mileage: mileage(30000),
			BodyType: models.BodySUV, FuelType: models.FuelPetrol, Transmission: models.TransmissionAutomatic,
			Condition: models.ConditionForeignUsed, Status: models.StatusSold, CreatedAt: base.Add(96 * time.Hour)},
	}
	for i := range cars {
		require.NoError(t, db.Create(&cars[i]).Error)
	}
}

func run(t *testing.T, db *gorm.DB, f Filter) []models.Car {
	t.Helper()
	var cars []models.Car
	require.NoError(t, f.Apply(db.Model(&models.Car{})).Find(&cars).Error)
	return cars
}

func TestDefaultStatusExcludesReservedAndSold(t *testing.T) {
	db := setupDB(t)
	seedCars(t, db)

	f := ParseQuery(url.Values{})
	cars := run(t, db, f)
	require.Len(t, cars, 3)
	for _, c := range cars {
		require.Equal(t, models.StatusAvailable, c.Status)
	}
}

func TestSentinelsContributeNoPredicate(t *testing.T) {
	db := setupDB(t)
	seedCars(t, db)

	f := ParseQuery(url.Values{
		"make":         {AllMakes},
		"body_type":    {AllTypes},
		"transmission": {All},
		"fuel_type":    {All},
		"condition":    {All},
		"status":       {All},
	})
	cars := run(t, db, f)
	require.Len(t, cars, 5, "all-sentinel state must return every row")
}

func TestFiltersAreConjunctive(t *testing.T) {
	db := setupDB(t)
	seedCars(t, db)

	f := ParseQuery(url.Values{
		"make":      {"Toyota"},
		"body_type": {"suv"},
	})
	cars := run(t, db, f)
	require.Len(t, cars, 1)
	require.Equal(t, "Land Cruiser", cars[0].Model)
}

func TestSearchMatchesMakeOrModelCaseInsensitive(t *testing.T) {
	db := setupDB(t)
	seedCars(t, db)

	f := ParseQuery(url.Values{"search": {"toyota"}, "status": {All}})
	require.Len(t, run(t, db, f), 2)

	f = ParseQuery(url.Values{"search": {"CIVIC"}, "status": {All}})
	cars := run(t, db, f)
	require.Len(t, cars, 1)
	require.Equal(t, "Honda", cars[0].Make)
}

func TestPriceBounds(t *testing.T) {
	db := setupDB(t)
	seedCars(t, db)

	f := ParseQuery(url.Values{"min_price": {"10000"}, "max_price": {"80000"}, "status": {All}})
	require.Len(t, run(t, db, f), 4, "bounds are inclusive")

	// min > max is a valid, empty result, never an error.
	f = ParseQuery(url.Values{"min_price": {"50000"}, "max_price": {"10000"}, "status": {All}})
	require.Empty(t, run(t, db, f))

	// Unparseable input means unbounded.
	f = ParseQuery(url.Values{"min_price": {"cheap"}, "status": {All}})
	require.Len(t, run(t, db, f), 5)
}

func TestSortOrders(t *testing.T) {
	db := setupDB(t)
	seedCars(t, db)

	low := run(t, db, ParseQuery(url.Values{"sort": {SortPriceLow}, "status": {All}}))
	high := run(t, db, ParseQuery(url.Values{"sort": {SortPriceHigh}, "status": {All}}))
	require.Len(t, low, 5)
	require.Len(t, high, 5)
	for i := range low {
		require.Equal(t, low[i].ID, high[len(high)-1-i].ID, "price_low must be the exact reverse of price_high")
	}

	newest := run(t, db, ParseQuery(url.Values{"status": {All}}))
	for i := 1; i < len(newest); i++ {
		require.False(t, newest[i].CreatedAt.After(newest[i-1].CreatedAt))
	}

	byMileage := run(t, db, ParseQuery(url.Values{"sort": {SortMileage}, "status": {All}}))
	for i := 1; i < len(byMileage); i++ {
		require.LessOrEqual(t, *byMileage[i-1].Mileage, *byMileage[i].Mileage)
	}

	byYear := run(t, db, ParseQuery(url.Values{"sort": {SortYear}, "status": {All}}))
	for i := 1; i < len(byYear); i++ {
		require.GreaterOrEqual(t, byYear[i-1].Year, byYear[i].Year)
	}
}

func TestCacheKeyReflectsFullTuple(t *testing.T) {
	a := ParseQuery(url.Values{"make": {"Toyota"}})
	b := ParseQuery(url.Values{"make": {"Toyota"}})
	c := ParseQuery(url.Values{"make": {"Toyota"}, "sort": {SortPriceLow}})
	require.Equal(t, a.CacheKey(), b.CacheKey())
	require.NotEqual(t, a.CacheKey(), c.CacheKey())
}

func TestParseQueryDefaults(t *testing.T) {
	f := ParseQuery(url.Values{})
	require.Equal(t, "available", f.Status)
	require.Equal(t, SortNewest, f.SortBy)
}
