package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"currex/internal/adapters/cache"
	"currex/internal/adapters/httpclient"
	"currex/internal/adapters/memstore"
	"currex/internal/api"
	"currex/internal/config"
	"currex/internal/metrics"
	httpserver "currex/internal/platform/http"
	"currex/internal/rate"
	"currex/internal/rate/handler"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const pairCacheMaxItems = 1024

// Run wires the application components, starts the rate refresher and the
// HTTP server, and blocks until shutdown.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Static currency set, fixed for the process lifetime
	catalog, err := appCfg.Catalog()
	if err != nil {
		logrus.WithError(err).Error("Failed to load currency catalog")
		return err
	}
	logrus.Infof("✅ Currency catalog loaded (%d currencies)", len(catalog))

	clock := clockwork.NewRealClock()
	m := metrics.New(prometheus.DefaultRegisterer)
	rateCache := rate.NewCache(catalog, clock)

	// External rate provider client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 15 * time.Second
	}
	provider := httpclient.NewRateProviderClient(&http.Client{Timeout: httpTimeout}, appCfg.RateProvider.URL)

	pairCache, err := cache.NewPairRateCache(pairCacheMaxItems)
	if err != nil {
		logrus.WithError(err).Error("Failed to create pair rate cache")
		return err
	}
	defer pairCache.Close()

	history := memstore.NewHistory(appCfg.History.Capacity)

	refresher := rate.NewRefresher(provider, rateCache, pairCache, m, clock, rate.RefresherConfig{
		Interval:     time.Duration(appCfg.Refresh.IntervalMinutes) * time.Minute,
		RetryBackoff: time.Duration(appCfg.Refresh.RetryMinutes) * time.Minute,
		FetchTimeout: httpTimeout,
	})
	// Ensure the refresher stops before the process exits
	defer func() {
		if shutDownErr := refresher.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Refresher shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := refresher.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start refresher")
		return startErr
	}
	logrus.Info("✅ Rate refresher activation successful")

	// Handlers and router
	converter := rate.NewConverter(rateCache, pairCache, history, m, clock)
	rateHandler := handler.NewRateHandler(rateCache, converter)
	router := api.NewRouter(rateHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop the refresher and in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
