package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Edmond40/hotel-management-system/models"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

// resolveMySQLDSN prefers MYSQL_URL / DATABASE_URL and falls back to the
// discrete DB_* variables.
func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase populates an empty database with a default admin, a few rooms,
// menu items and the hotel settings record. It never overwrites existing rows.
func SeedDatabase() {
	var adminCount int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Warn().Err(err).Msg("failed to hash default admin password")
		} else {
			admin := models.User{
				Name:         "Admin User",
				Email:        envOrDefault("ADMIN_EMAIL", "admin@hotel.local"),
				PasswordHash: string(hash),
				Role:         models.RoleAdmin,
				IsActive:     true,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Warn().Err(err).Msg("failed to create default admin")
			} else {
				log.Info().Str("email", admin.Email).Msg("default admin seeded")
			}
		}
	}

	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{Number: "101", Type: "Standard", Price: 80, Capacity: 2, Floor: "1", Status: models.RoomAvailable, Available: true,
				Amenities: models.AmenityList{"WiFi", "TV"}},
			{Number: "102", Type: "Standard", Price: 80, Capacity: 2, Floor: "1", Status: models.RoomAvailable, Available: true,
				Amenities: models.AmenityList{"WiFi", "TV"}},
			{Number: "201", Type: "Deluxe", Price: 140, Capacity: 3, Floor: "2", Status: models.RoomAvailable, Available: true,
				Amenities: models.AmenityList{"WiFi", "TV", "Mini Bar", "Balcony"}},
			{Number: "301", Type: "Suite", Price: 250, Capacity: 4, Floor: "3", Status: models.RoomAvailable, Available: true,
				Amenities: models.AmenityList{"WiFi", "TV", "Mini Bar", "Balcony", "Jacuzzi"}},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Warn().Err(err).Msg("failed to seed rooms")
		} else {
			log.Info().Int("count", len(rooms)).Msg("rooms seeded")
		}
	}

	var menuCount int64
	DB.Model(&models.MenuItem{}).Count(&menuCount)
	if menuCount == 0 {
		items := []models.MenuItem{
			{Name: "Continental Breakfast", Category: "Breakfast", Price: 12.5, Available: true},
			{Name: "Club Sandwich", Category: "Lunch", Price: 9.0, Available: true},
			{Name: "Grilled Salmon", Category: "Dinner", Price: 22.0, Available: true},
			{Name: "Fresh Orange Juice", Category: "Drinks", Price: 4.5, Available: true},
		}
		if err := DB.Create(&items).Error; err != nil {
			log.Warn().Err(err).Msg("failed to seed menu items")
		} else {
			log.Info().Int("count", len(items)).Msg("menu items seeded")
		}
	}

	var settingCount int64
	DB.Model(&models.HotelSetting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.HotelSetting{
			Name:  envOrDefault("HOTEL_NAME", "Grand Hotel"),
			Email: envOrDefault("HOTEL_EMAIL", "info@hotel.local"),
		}
		if err := DB.Create(&setting).Error; err != nil {
			log.Warn().Err(err).Msg("failed to seed hotel settings")
		} else {
			log.Info().Msg("hotel settings seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	gormLogLevel := logger.Warn
	if strings.EqualFold(os.Getenv("DB_LOG"), "info") {
		gormLogLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	DB = db

	// parent tables first
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Reservation{},
		&models.Invoice{},
		&models.MenuItem{},
		&models.Request{},
		&models.Notification{},
		&models.HotelSetting{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
