package core

import (
	"errors"

	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"

	"github.com/rackops/fwctl/internal/config"
	"github.com/rackops/fwctl/internal/creds"
	"github.com/rackops/fwctl/internal/event"
	"github.com/rackops/fwctl/internal/healthgate"
	"github.com/rackops/fwctl/internal/ipmi"
	"github.com/rackops/fwctl/internal/job"
	"github.com/rackops/fwctl/internal/protocol"
	"github.com/rackops/fwctl/internal/redfish"
	"github.com/rackops/fwctl/internal/soap"
	"github.com/rackops/fwctl/internal/updater"
	"github.com/rackops/fwctl/internal/vendorcli"
)

// newSqliteDatabase opens the job database at the path shared via viper
func newSqliteDatabase() (*gorm.DB, error) {
	filepath := viper.Get("database-file")

	dbFile, ok := filepath.(string)

	if !ok {
		return nil, errors.New("failed to find database file path config")
	}

	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
	})

	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&job.UpdateJob{}); err != nil {
		return nil, err
	}

	return db, nil
}

// CreateNewAppCore creates and returns a new instance of *core.Core
func CreateNewAppCore(conf *config.Config) (*Core, error) {
	db, err := newSqliteDatabase()

	if err != nil {
		return nil, err
	}

	eventManager := event.NewEventManager()

	clients := []protocol.Client{
		redfish.NewClient(conf.Protocols),
		soap.NewClient(conf.Protocols),
		vendorcli.NewClient(conf.Protocols),
		ipmi.NewClient(conf.Protocols),
	}

	manager := protocol.NewManager(clients, conf.Protocols, eventManager.Send)

	detector := protocol.NewDetectionCache(manager, conf.Protocols.DetectionCacheTTL)

	resolver := creds.NewConfigResolver(conf)

	jobService := job.NewService(job.NewSqliteRepo(db), eventManager.Send)

	gates := func(host string, credentials protocol.Credentials) updater.Gate {
		return healthgate.NewEvaluator(redfish.NewSource(conf.Protocols, host, credentials))
	}

	return New(
		conf,
		resolver,
		detector,
		manager,
		jobService,
		updater.NewNoopOrchestrator(),
		gates,
		eventManager,
	), nil
}
