// FilePath: internal/config/config_test.go
package config_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/prodvision/floorhub/internal/config"
)

func TestLoad(t *testing.T) {
	Convey("Given the memory driver via environment", t, func() {
		t.Setenv("FLOORHUB_DATABASE__DRIVER", "memory")

		Convey("When loading configuration", func() {
			cfg, err := config.Load()

			Convey("Then the defaults apply", func() {
				So(err, ShouldBeNil)
				So(cfg.Server.Port, ShouldEqual, 8080)
				So(cfg.Server.ReadTimeout, ShouldEqual, 15*time.Second)
				So(cfg.Engine.EventDurationMinutes, ShouldEqual, 5)
				So(cfg.Engine.SliceDuration(), ShouldEqual, 5*time.Minute)
				So(cfg.Engine.MaxBatchSize, ShouldEqual, 1000)
				So(cfg.Cache.Enabled, ShouldBeFalse)
				So(cfg.Cache.DashboardTTL, ShouldEqual, 30*time.Second)
			})
		})

		Convey("When overriding engine values via environment", func() {
			t.Setenv("FLOORHUB_ENGINE__EVENT_DURATION_MINUTES", "10")
			t.Setenv("FLOORHUB_ENGINE__MAX_BATCH_SIZE", "250")

			cfg, err := config.Load()

			Convey("Then the overrides take effect", func() {
				So(err, ShouldBeNil)
				So(cfg.Engine.EventDurationMinutes, ShouldEqual, 10)
				So(cfg.Engine.SliceDuration(), ShouldEqual, 10*time.Minute)
				So(cfg.Engine.MaxBatchSize, ShouldEqual, 250)
			})
		})

		Convey("When the event duration is not positive", func() {
			t.Setenv("FLOORHUB_ENGINE__EVENT_DURATION_MINUTES", "0")

			_, err := config.Load()

			Convey("Then validation fails", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})

	Convey("Given the postgres driver", t, func() {
		t.Setenv("FLOORHUB_DATABASE__DRIVER", "postgres")

		Convey("When no host is configured", func() {
			t.Setenv("FLOORHUB_DATABASE__POSTGRES__HOST", "")

			_, err := config.Load()

			Convey("Then validation fails", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When a host is configured", func() {
			t.Setenv("FLOORHUB_DATABASE__POSTGRES__HOST", "db.internal")

			cfg, err := config.Load()

			Convey("Then postgres defaults fill the rest", func() {
				So(err, ShouldBeNil)
				So(cfg.Database.Postgres.Host, ShouldEqual, "db.internal")
				So(cfg.Database.Postgres.Port, ShouldEqual, 5432)
				So(cfg.Database.Postgres.SSLMode, ShouldEqual, "disable")
			})
		})
	})

	Convey("Given an unknown driver", t, func() {
		t.Setenv("FLOORHUB_DATABASE__DRIVER", "etcd")

		Convey("When loading configuration", func() {
			_, err := config.Load()

			Convey("Then validation fails", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
