package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/base/database/mongoclient"
	"github.com/x-xyz/lendapi/base/log"
	bValidator "github.com/x-xyz/lendapi/base/validator"
	"github.com/x-xyz/lendapi/domain"
	"github.com/x-xyz/lendapi/domain/lending"
	mmiddleware "github.com/x-xyz/lendapi/middleware"
	"github.com/x-xyz/lendapi/service/chain"
	"github.com/x-xyz/lendapi/service/chain/contract"
	"github.com/x-xyz/lendapi/service/query"
	auth_delivery "github.com/x-xyz/lendapi/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/lendapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/lendapi/stores/auth/usecase"
	bank_delivery "github.com/x-xyz/lendapi/stores/bank/delivery/http"
	bank_repository "github.com/x-xyz/lendapi/stores/bank/repository"
	bank_usecase "github.com/x-xyz/lendapi/stores/bank/usecase"
	custody_repository "github.com/x-xyz/lendapi/stores/custody/repository"
	custody_usecase "github.com/x-xyz/lendapi/stores/custody/usecase"
	hc_delivery "github.com/x-xyz/lendapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/lendapi/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/lendapi/stores/healthcheck/usecase"
	lending_delivery "github.com/x-xyz/lendapi/stores/lending/delivery/http"
	lending_repository "github.com/x-xyz/lendapi/stores/lending/repository"
	lending_usecase "github.com/x-xyz/lendapi/stores/lending/usecase"
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
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init chain service, optional erc721 ownership checks
	networks := viper.Sub("networks")
	rpcs := make(map[int32]string)
	if networks != nil {
		for k := range networks.AllSettings() {
			chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
			rpcUrl := networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
			rpcs[chainId] = rpcUrl
		}
	}
	var erc721Service contract.Erc721Contract
	if len(rpcs) > 0 {
		chainService, err := chain.NewClient(context, &chain.ClientCfg{RpcUrls: rpcs})
		if err != nil {
			context.WithField("err", err).Warn("chainService started with error")
		}
		erc721Service = contract.NewErc721(chainService)
	}

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient)
	offerRepo := lending_repository.NewOffer(q)
	collectionRepo := lending_repository.NewCollection(q)
	configRepo := lending_repository.NewConfig(q)
	balanceRepo := bank_repository.NewBalance(q)
	holdingRepo := custody_repository.NewHolding(q)

	hc := hc_usecase.New(hcRepo)
	bankService := bank_usecase.New(balanceRepo)
	custodyService := custody_usecase.New(&custody_usecase.CustodyCfg{
		Holdings: holdingRepo,
		Erc721:   erc721Service,
		ChainId:  viper.GetInt32("custody.chainId"),
	})
	lendingUsecase := lending_usecase.New(&lending_usecase.LendingCfg{
		Offers:      offerRepo,
		Collections: collectionRepo,
		Configs:     configRepo,
		Bank:        bankService,
		Custody:     custodyService,
		Uow:         query.NewUnitOfWork(q),
		Clock:       domain.SystemClock,
	})
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"))

	// seed the protocol config once at startup
	initPayload := lending.InitializePayload{
		Admin:    domain.Address(viper.GetString("lending.admin")),
		Interest: viper.GetUint64("lending.interest"),
		Denom:    viper.GetString("lending.denom"),
	}
	if err := viper.UnmarshalKey("lending.collections", &initPayload.NftCollections); err != nil {
		log.Log().WithField("err", err).Panic("invalid lending.collections config")
	}
	if err := lendingUsecase.Initialize(context, initPayload); err != nil {
		log.Log().WithField("err", err).Panic("initialize failed")
	}

	authMiddleware := auth_middleware.New(auth)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth)
	lending_delivery.New(e, lendingUsecase, authMiddleware)
	bank_delivery.New(e, bankService, lendingUsecase, authMiddleware)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"address": string(c.Get("address").(domain.Address)),
		})
	}, authMiddleware.Auth())

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
	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
