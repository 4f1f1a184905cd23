package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fulldump/box"

	"tableman/api"
	"tableman/configuration"
	"tableman/service"
)

var VERSION = "dev"

func Bootstrap(c *configuration.Configuration, logger *slog.Logger) (start, stop func()) {

	s := service.NewService(&service.Config{
		DataFile: c.DataFile,
	}, logger)

	b := api.Build(s, VERSION)
	b.WithInterceptors(
		api.AccessLog(logger),
		api.InterceptorUnavailable(s),
		api.RecoverFromPanic,
		api.PrettyErrorInterceptor,
	)

	server := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		logger.Error("listen", "error", err.Error())
		os.Exit(-1)
	}
	logger.Info("listening", "addr", c.HttpAddr)

	stop = func() {
		s.Stop()
		server.Shutdown(context.Background())
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		for {
			sig := <-signalChan
			fmt.Println("Signal received", sig.String())
			stop()
		}
	}()

	start = func() {

		wg := &sync.WaitGroup{}

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Start()
			if err != nil {
				logger.Error("service", "error", err.Error())
			}
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			err := server.Serve(ln)
			if err != nil && err != http.ErrServerClosed {
				logger.Error("serve", "error", err.Error())
			}
		}()

		wg.Wait()
	}

	return start, stop
}
