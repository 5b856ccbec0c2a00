package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"earnhub/pkg/config"
	"earnhub/pkg/db"
	"earnhub/pkg/gen"
	"earnhub/pkg/logger"
	"earnhub/pkg/repository"
	"earnhub/services/earning"

	"github.com/bwmarrin/snowflake"
)

var (
	userID = flag.String("user", "demo-user", "user to seed earnings for")
	count  = flag.Int("count", 50, "number of records to generate")
	seed   = flag.Int64("seed", 0, "rng seed, 0 for time-based")
)

func main() {
	flag.Parse()

	opts := []fx.Option{
		config.Module,
		logger.Module,
		db.Module,
		gen.Module,
		fx.Invoke(run),
	}

	if err := fx.ValidateApp(opts...); err != nil {
		log.Fatalf("fx validation failed: %v", err)
	}

	fx.New(opts...).Run()
}

func run(gdb *gorm.DB, node *snowflake.Node, shutdowner fx.Shutdowner) error {
	if err := gdb.AutoMigrate(&earning.Record{}); err != nil {
		return err
	}

	records := earning.NewGenerator(*seed).Generate(*userID, *count)
	for _, r := range records {
		r.ID = node.Generate().String()
	}

	repo := repository.ProvideStore[earning.Record](gdb)
	if err := repo.BatchCreate(context.Background(), records); err != nil {
		return err
	}

	zap.L().Info("seeded earnings",
		zap.String("user_id", *userID), zap.Int("count", len(records)))

	return shutdowner.Shutdown()
}
