package main

import (
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/helioworks/payment-service/internal/config"
	"github.com/helioworks/payment-service/internal/domain/model"
	"github.com/helioworks/payment-service/internal/infrastructure/database"
	"github.com/helioworks/payment-service/pkg/logger"
)

type planFile struct {
	Plans []planEntry `yaml:"plans"`
}

type planEntry struct {
	Code         string `yaml:"code"`
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	Price        string `yaml:"price"`
	DurationDays int    `yaml:"duration_days"`
	SortOrder    int    `yaml:"sort_order"`
	Active       *bool  `yaml:"active"`
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	plansPath := os.Getenv("PLANS_PATH")
	if plansPath == "" {
		plansPath = "./configs/plans.yaml"
	}

	plans, err := loadPlansFromYAML(plansPath)
	if err != nil {
		zapLogger.Fatal("Failed to load plan catalog", zap.String("path", plansPath), zap.Error(err))
	}

	db, err := database.NewConnection(&cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, zapLogger); err != nil {
			zapLogger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if err := database.Migrate(db, zapLogger); err != nil {
		zapLogger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	seeded := 0
	for _, plan := range plans {
		if err := upsertPlan(db, plan); err != nil {
			zapLogger.Error("Failed to upsert plan",
				zap.String("code", plan.Code),
				zap.Error(err))
			continue
		}
		seeded++
	}

	zapLogger.Info("Plan catalog seeded",
		zap.String("path", plansPath),
		zap.Int("seeded", seeded),
		zap.Int("total", len(plans)))
}

func loadPlansFromYAML(path string) ([]*model.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var file planFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse plan file: %w", err)
	}

	plans := make([]*model.Plan, 0, len(file.Plans))
	for _, entry := range file.Plans {
		if entry.Code == "" {
			return nil, fmt.Errorf("plan entry without code")
		}
		price, err := decimal.NewFromString(entry.Price)
		if err != nil {
			return nil, fmt.Errorf("plan %s has invalid price %q: %w", entry.Code, entry.Price, err)
		}
		if entry.DurationDays <= 0 {
			return nil, fmt.Errorf("plan %s has invalid duration %d", entry.Code, entry.DurationDays)
		}

		active := true
		if entry.Active != nil {
			active = *entry.Active
		}

		plans = append(plans, &model.Plan{
			Code:         entry.Code,
			Name:         entry.Name,
			Description:  entry.Description,
			Price:        price,
			DurationDays: entry.DurationDays,
			SortOrder:    entry.SortOrder,
			IsActive:     active,
		})
	}
	return plans, nil
}

func upsertPlan(db *gorm.DB, plan *model.Plan) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "price", "duration_days", "sort_order", "is_active", "updated_at",
		}),
	}).Create(plan).Error
}
