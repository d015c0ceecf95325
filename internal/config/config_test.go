package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/osuapi/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.APIKey, convey.ShouldBeEmpty)
			convey.So(cfg.BaseURL, convey.ShouldEqual, "https://osu.ppy.sh/api")
			convey.So(cfg.TimeoutMS, convey.ShouldEqual, 30_000)
			convey.So(cfg.Timeout(), convey.ShouldEqual, 30*time.Second)
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.MetricsAddr, convey.ShouldBeEmpty)
		})

		convey.Convey("Then validation should require an API key", func() {
			err := cfg.Validate()
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldStartWith, "osu-query: invalid config")
			convey.So(err.Error(), convey.ShouldContainSubstring, "api_key must not be empty")

			cfg.APIKey = "key"
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}
