package main

import (
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/go-playground/validator/v10"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/database/mongoclient"
	"github.com/x-xyz/storefront/base/database/redisclient"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/base/metrics"
	bValidator "github.com/x-xyz/storefront/base/validator"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/keys"
	"github.com/x-xyz/storefront/domain/listing"
	mmiddleware "github.com/x-xyz/storefront/middleware"
	"github.com/x-xyz/storefront/service/cache"
	"github.com/x-xyz/storefront/service/cache/provider"
	"github.com/x-xyz/storefront/service/cache/provider/compound"
	"github.com/x-xyz/storefront/service/cache/provider/local"
	redisprov "github.com/x-xyz/storefront/service/cache/provider/redis"
	"github.com/x-xyz/storefront/service/chain"
	"github.com/x-xyz/storefront/service/chain/contract"
	"github.com/x-xyz/storefront/service/ens"
	"github.com/x-xyz/storefront/service/notifier"
	"github.com/x-xyz/storefront/service/query"
	"github.com/x-xyz/storefront/service/redis"
	action_delivery "github.com/x-xyz/storefront/stores/action/delivery/http"
	action_repository "github.com/x-xyz/storefront/stores/action/repository"
	action_usecase "github.com/x-xyz/storefront/stores/action/usecase"
	auth_delivery "github.com/x-xyz/storefront/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/storefront/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/storefront/stores/auth/usecase"
	currency_usecase "github.com/x-xyz/storefront/stores/currency/usecase"
	ens_delivery "github.com/x-xyz/storefront/stores/ens/delivery/http"
	hc_delivery "github.com/x-xyz/storefront/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/storefront/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/storefront/stores/healthcheck/usecase"
	listing_delivery "github.com/x-xyz/storefront/stores/listing/delivery/http"
	listing_usecase "github.com/x-xyz/storefront/stores/listing/usecase"
	metadata_usecase "github.com/x-xyz/storefront/stores/metadata/usecase"
	offer_delivery "github.com/x-xyz/storefront/stores/offer/delivery/http"
	offer_usecase "github.com/x-xyz/storefront/stores/offer/usecase"
	page_delivery "github.com/x-xyz/storefront/stores/page/delivery/http"
	page_usecase "github.com/x-xyz/storefront/stores/page/usecase"
	transfer_delivery "github.com/x-xyz/storefront/stores/transfer_event/delivery/http"
	transfer_usecase "github.com/x-xyz/storefront/stores/transfer_event/usecase"
	web_resource_repository "github.com/x-xyz/storefront/stores/web_resource/repository"
	web_resource_usecase "github.com/x-xyz/storefront/stores/web_resource/usecase"

	_ "github.com/x-xyz/storefront/app/api/docs"
)

func init() {
	configPath := pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("chain.throttle", 16)
	viper.SetDefault("marketplace.flavor", contract.FlavorMarketplaceV3)
	viper.SetDefault("marketplace.offerDuration", 7*24*time.Hour)
	viper.SetDefault("page.ownerHead", 8)
	viper.SetDefault("page.ownerTail", 4)
	viper.SetDefault("page.shortHead", 4)
	viper.SetDefault("page.shortTail", 2)
	viper.SetDefault("page.historyLimit", 50)
	viper.SetDefault("page.offerColumn", "USDC")
	viper.SetDefault("http.timeout", 10*time.Second)
	viper.SetDefault("cache.localSizeMB", 64)
	viper.SetDefault("cache.ttl", time.Hour)

	if viper.GetBool(`debug`) {
		log.SetDebug(true)
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			Storefront API
//	@version		1.0
//	@description	Backend for the NFT storefront pages.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrive token from #/auth/post_auth_sign and apply with `bearer {token}`
func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.AddContext())
	e.Use(middL.ResponseLogger())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	mongoClient := mongoclient.MustConnect(mongoclient.Config{
		Uri:         viper.GetString("mongo.uri"),
		DbName:      viper.GetString("mongo.dbName"),
		EnableSSL:   viper.GetBool("mongo.enableSSL"),
		MaxPoolSize: viper.GetUint64("mongo.maxPoolSize"),
	})
	q := query.New(mongoClient)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCachePool := redisclient.MustConnect(redisclient.Config{
		Uri:       viper.GetString("redis_cache.uri"),
		Password:  viper.GetString("redis_cache.password"),
		MaxIdle:   viper.GetInt("redis_cache.maxIdle"),
		MaxActive: viper.GetInt("redis_cache.maxActive"),
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)

	// freecache in front of redis for the slow changing metadata
	layers := compound.NewCompound(
		local.NewLocal("storefront", viper.GetInt("cache.localSizeMB")),
		redisprov.NewRedis(redisCache),
	)
	cacheTtl := viper.GetDuration("cache.ttl")
	newCache := func(pfx string, layer provider.Provider) cache.Service {
		return cache.New(cache.ServiceConfig{Ttl: cacheTtl, Pfx: pfx, Cache: layer})
	}

	// init chain service
	chainId := domain.ChainId(viper.GetInt("chain.chainId"))
	rpcUrl := viper.GetString("chain.rpcUrl")
	explorerUrl := viper.GetString("chain.explorerUrl")
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		ChainId:    chainId,
		RpcUrl:     rpcUrl,
		Throttle:   viper.GetInt("chain.throttle"),
		PrivateKey: viper.GetString("signer.privateKey"),
	})
	if err != nil {
		context.WithField("err", err).Panic("chain.NewClient failed")
	}
	marketplace, err := contract.NewMarketplace(
		chainService,
		domain.Address(viper.GetString("marketplace.address")),
		viper.GetString("marketplace.flavor"),
	)
	if err != nil {
		context.WithField("err", err).Panic("contract.NewMarketplace failed")
	}
	erc20Service := contract.NewErc20(chainService)
	erc721Service := contract.NewErc721(chainService)

	// ens lives on mainnet, the storefront chain may not
	ensRpcUrl := viper.GetString("ens.rpcUrl")
	if ensRpcUrl == "" {
		ensRpcUrl = rpcUrl
	}
	ensBackend, err := ethclient.DialContext(context, ensRpcUrl)
	if err != nil {
		context.WithField("err", err).Panic("ethclient.DialContext failed")
	}
	ensService := ens.New(ensBackend, newCache(keys.PfxEns, layers))

	// web resources for token metadata
	httpTimeout := viper.GetDuration("http.timeout")
	httpClient := &http.Client{}
	ipfsReaders := []domain.WebResourceReaderRepository{}
	if nodeApi := viper.GetString("ipfs.nodeApi"); nodeApi != "" {
		ipfsReaders = append(ipfsReaders, web_resource_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(nodeApi), httpTimeout))
	}
	ipfsGateway := viper.GetString("ipfs.gateway")
	ipfsReaders = append(ipfsReaders, web_resource_repository.NewIpfsGatewayReaderRepo(httpClient, ipfsGateway, httpTimeout))
	webResource := web_resource_usecase.NewWebResourceUseCase(&web_resource_usecase.WebResourceUseCaseCfg{
		HttpReader:    web_resource_repository.NewHttpReaderRepo(httpClient, httpTimeout, nil),
		IpfsReaders:   ipfsReaders,
		DataUriReader: web_resource_repository.NewDataUriReaderRepo(),
		IpfsGateway:   ipfsGateway,
	})

	discord, err := notifier.NewDiscord(notifier.DiscordConfig{
		BotKey:    viper.GetString("discord.botKey"),
		ChannelId: viper.GetString("discord.channelId"),
	})
	if err != nil {
		context.WithField("err", err).Panic("notifier.NewDiscord failed")
	}

	grids := map[string]listing.GridConfig{}
	if err := viper.UnmarshalKey("grids", &grids); err != nil {
		context.WithField("err", err).Panic("viper.UnmarshalKey grids failed")
	}

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(q, redisCache, chainService)
	actionRepo := action_repository.New(q)

	hc := hc_usecase.New(hcRepo)
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), viper.GetString("auth.signatureMsg"), redisCache)
	currency := currency_usecase.New(&currency_usecase.Config{
		ChainId:      chainId,
		Erc20:        erc20Service,
		Cache:        newCache(keys.PfxCurrency, layers),
		NativeSymbol: viper.GetString("chain.nativeSymbol"),
	})
	asset := metadata_usecase.NewAssetUseCase(&metadata_usecase.AssetUseCaseCfg{
		Erc721:      erc721Service,
		WebResource: webResource,
		Cache:       newCache(keys.PfxAsset, layers),
		DetectMedia: viper.GetBool("asset.detectMedia"),
	})
	listingUC := listing_usecase.New(marketplace, currency)
	grid := listing_usecase.NewGrid(&listing_usecase.GridConfig{
		Listing: listingUC,
		Asset:   asset,
		Grids:   grids,
	})
	offer := offer_usecase.New(marketplace, currency)
	history := transfer_usecase.NewTransferEventUseCase(&transfer_usecase.Config{
		Chain:      chainService,
		FromBlock:  viper.GetUint64("events.fromBlock"),
		WindowSize: viper.GetUint64("events.windowSize"),
	})
	watcher := action_usecase.NewWatcher(&action_usecase.WatcherConfig{
		Chain:       chainService,
		Repo:        actionRepo,
		Notifier:    discord,
		ExplorerUrl: explorerUrl,
	})
	action := action_usecase.New(&action_usecase.Config{
		ChainId:       chainId,
		Chain:         chainService,
		Marketplace:   marketplace,
		Erc20:         erc20Service,
		Listing:       listingUC,
		Currency:      currency,
		Repo:          actionRepo,
		Watcher:       watcher,
		OfferCurrency: domain.Address(viper.GetString("marketplace.offerCurrency")),
		OfferDuration: viper.GetDuration("marketplace.offerDuration"),

		AllowedAccounts: signerAccounts(),
		MaxValue:        signerMaxValue(),
	})
	pageUC := page_usecase.New(&page_usecase.Config{
		Display: page_usecase.Display{
			ChainId:     chainId,
			ExplorerUrl: explorerUrl,
			OwnerHead:   viper.GetInt("page.ownerHead"),
			OwnerTail:   viper.GetInt("page.ownerTail"),
			ShortHead:   viper.GetInt("page.shortHead"),
			ShortTail:   viper.GetInt("page.shortTail"),
			OfferColumn: viper.GetString("page.offerColumn"),
		},
		SectionTimeout: viper.GetDuration("page.sectionTimeout"),
		HistoryLimit:   viper.GetInt("page.historyLimit"),
		Listing:        listingUC,
		Offer:          offer,
		History:        history,
		Asset:          asset,
		Erc721:         erc721Service,
		Ens:            ensService,
		Action:         action,
	})

	authM := auth_middleware.New(auth)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	listing_delivery.New(e, listingUC, grid)
	offer_delivery.New(e, offer)
	transfer_delivery.New(e, history)
	page_delivery.New(e, pageUC)
	action_delivery.New(e, action, authM)
	ens_delivery.New(e, ensService)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
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

func signerAccounts() []domain.Address {
	accounts := []domain.Address{}
	for _, a := range viper.GetStringSlice("signer.allowedAccounts") {
		accounts = append(accounts, domain.Address(a).ToLower())
	}
	return accounts
}

func signerMaxValue() map[domain.Address]*big.Int {
	res := map[domain.Address]*big.Int{}
	for cur, v := range viper.GetStringMapString("signer.maxValue") {
		amount, ok := new(big.Int).SetString(v, 10)
		if !ok {
			log.Log().WithFields(log.Fields{"currency": cur, "value": v}).Panic("invalid signer.maxValue")
		}
		res[domain.Address(cur).ToLower()] = amount
	}
	return res
}
