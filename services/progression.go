package services

import (
	"fmt"

	"reporthub/db"
	"reporthub/progression"
)

var progressionEngine *progression.Engine

// InitProgressionService wires the progression engine against MongoDB
// with the production rule set. Must run after db.ConnectMongoDB.
func InitProgressionService() error {
	registry, err := progression.NewRegistry(progression.DefaultRules())
	if err != nil {
		return fmt.Errorf("failed to build achievement registry: %w", err)
	}

	engine, err := progression.NewEngine(
		db.NewProgressStore(db.MongoDatabase),
		db.NewUnlockStore(db.MongoDatabase),
		registry,
		NewMongoStatsProvider(db.MongoDatabase),
		progression.DefaultTariff(),
	)
	if err != nil {
		return fmt.Errorf("failed to build progression engine: %w", err)
	}

	progressionEngine = engine
	return nil
}

func GetProgressionEngine() *progression.Engine {
	return progressionEngine
}
