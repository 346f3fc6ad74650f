package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	app "github.com/okian/talentiq/internal/app"
	"github.com/okian/talentiq/internal/config"
	"github.com/okian/talentiq/pkg/logger"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestMainConfiguration(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When loading configuration from the environment", func() {
			t.Setenv("TALENTIQ_ADDR", ":8080")
			t.Setenv("TALENTIQ_REPORT_QUEUE_SIZE", "16")
			t.Setenv("TALENTIQ_REPORT_WORKERS", "4")

			cfg, err := config.Load(context.Background())

			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
			convey.So(cfg.ReportQueueSize, convey.ShouldEqual, 16)
			convey.So(cfg.ReportWorkers, convey.ShouldEqual, 4)

			convey.Convey("Then a service should be built from it", func() {
				svc, err := newService(cfg, logger.Nop())
				convey.So(err, convey.ShouldBeNil)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When the dataset path does not exist", func() {
			cfg := config.New(context.Background())
			cfg.DatasetPath = filepath.Join(t.TempDir(), "missing.yaml")

			_, err := newService(cfg, logger.Nop())

			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "load dataset")
		})

		convey.Convey("When the address is empty", func() {
			t.Setenv("TALENTIQ_ADDR", "")

			cfg, err := config.Load(context.Background())

			convey.So(err, convey.ShouldNotBeNil)
			convey.So(cfg, convey.ShouldBeNil)
		})
	})
}

func TestMainMux(t *testing.T) {
	convey.Convey("Given a started service behind the application mux", t, func() {
		ctx := context.Background()
		svc := app.New(app.WithRefreshDelay(0), app.WithRandomSeed(1), app.WithLogger(logger.Nop()))
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()
		mux := newMux(ctx, svc)

		for path, want := range map[string]string{
			"/":                  "text/html",
			"/api-docs":          "text/html",
			"/openapi.yaml":      "application/yaml",
			"/employees":         "application/json",
			"/dashboard/summary": "application/json",
		} {
			req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			convey.So(w.Header().Get("Content-Type"), convey.ShouldContainSubstring, want)
		}
	})
}

func TestRunStopsOnCancel(t *testing.T) {
	convey.Convey("Given run with a free port", t, func() {
		t.Setenv("TALENTIQ_ADDR", "127.0.0.1:0")
		t.Setenv("TALENTIQ_REFRESH_DELAY_MS", "0")
		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		convey.Convey("Then it should return cleanly when the context ends", func() {
			convey.So(run(ctx), convey.ShouldBeNil)
		})
	})
}

func TestMainMetricsUpdaters(t *testing.T) {
	convey.Convey("Given the metrics updaters", t, func() {
		convey.Convey("Then the system updater should stop with its context", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()
			convey.So(func() { startSystemMetricsUpdater(ctx) }, convey.ShouldNotPanic)
		})

		convey.Convey("And a single update should not panic", func() {
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
			svc := app.New()
			convey.So(func() { updateServiceMetrics(context.Background(), svc) }, convey.ShouldNotPanic)
		})
	})
}

func TestMain(m *testing.M) {
	_ = os.Unsetenv("TALENTIQ_CONFIG")
	os.Exit(m.Run())
}
