package main

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/sznajderm/budget-manager-sub002/api"
	"github.com/sznajderm/budget-manager-sub002/internal/config"
	"github.com/sznajderm/budget-manager-sub002/internal/logging"
	"github.com/sznajderm/budget-manager-sub002/internal/operator"
	"github.com/sznajderm/budget-manager-sub002/internal/service"
	"github.com/sznajderm/budget-manager-sub002/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("budget-manager starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(context.Background(), envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	svc := service.NewService(dbStorage, envConfig.BcryptCost, envConfig.SessionTTL)

	opDelegator := operator.NewOperatorDelegator(dbStorage, 4)
	opDelegator.Start()
	defer opDelegator.Stop()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.HTTPPort,
			Service:  svc,
			Operator: opDelegator,
			Storage:  dbStorage,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
