package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/bidbay/goapi/base/ctx"
	"github.com/bidbay/goapi/base/database/mongoclient"
	"github.com/bidbay/goapi/base/log"
	bValidator "github.com/bidbay/goapi/base/validator"
	"github.com/bidbay/goapi/domain"
	mmiddleware "github.com/bidbay/goapi/middleware"
	"github.com/bidbay/goapi/service/query"
	account_delivery "github.com/bidbay/goapi/stores/account/delivery/http"
	account_repository "github.com/bidbay/goapi/stores/account/repository"
	auction_delivery "github.com/bidbay/goapi/stores/auction/delivery/http"
	auction_repository "github.com/bidbay/goapi/stores/auction/repository"
	auction_usecase "github.com/bidbay/goapi/stores/auction/usecase"
	auth_delivery "github.com/bidbay/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/bidbay/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/bidbay/goapi/stores/auth/usecase"
	custody_repository "github.com/bidbay/goapi/stores/custody/repository"
	gate_delivery "github.com/bidbay/goapi/stores/gate/delivery/http"
	gate_repository "github.com/bidbay/goapi/stores/gate/repository"
	gate_usecase "github.com/bidbay/goapi/stores/gate/usecase"
	ledger_repository "github.com/bidbay/goapi/stores/ledger/repository"
	settings_delivery "github.com/bidbay/goapi/stores/settings/delivery/http"
	settings_repository "github.com/bidbay/goapi/stores/settings/repository"
	settings_usecase "github.com/bidbay/goapi/stores/settings/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient)

	houseAddress := domain.Address(viper.GetString("marketplace.houseAddress")).ToLower()
	adminAddresses := []domain.Address{}
	for _, a := range viper.GetStringSlice("admin.addresses") {
		adminAddresses = append(adminAddresses, domain.Address(a))
	}

	// construct repository, usecase and delivery
	accountRepo := account_repository.NewAccountRepo(q)
	auctionRepo := auction_repository.NewAuctionRepo(q)
	eventRepo := auction_repository.NewEventRepo(q)
	paramsRepo := settings_repository.NewParamsRepo(q)
	flagRepo := gate_repository.NewFlagRepo(q)
	ledgerRepo := ledger_repository.NewLedgerRepo(q, houseAddress)
	custodyRepo := custody_repository.NewCustodyRepo(q)

	gateUC := gate_usecase.New(flagRepo, eventRepo, adminAddresses)
	paramsUC := settings_usecase.New(paramsRepo, eventRepo, gateUC)
	auctionUC := auction_usecase.New(&auction_usecase.AuctionUseCaseCfg{
		AuctionRepo:      auctionRepo,
		EventRepo:        eventRepo,
		ParamsUC:         paramsUC,
		Gate:             gateUC,
		Funds:            ledgerRepo,
		Custody:          custodyRepo,
		House:            houseAddress,
		PayTokenDecimals: int32(viper.GetInt32("marketplace.payTokenDecimals")),
	})
	auth := auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
		AccountRepo:  accountRepo,
		JwtSecret:    viper.GetString("auth.jwtSecret"),
		TokenTTL:     viper.GetDuration("auth.tokenTTL"),
		SignatureMsg: viper.GetString("auth.signatureMsg"),
	})

	authMiddleware := auth_middleware.New(auth)

	auth_delivery.New(e, auth)
	auction_delivery.New(e, authMiddleware.Auth(), auctionUC, eventRepo)
	settings_delivery.New(e, authMiddleware.Auth(), paramsUC)
	gate_delivery.New(e, authMiddleware.Auth(), gateUC)
	account_delivery.New(e, authMiddleware.Auth(), ledgerRepo, custodyRepo, gateUC)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
