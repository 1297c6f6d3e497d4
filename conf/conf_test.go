// Copyright (c) 2026 Edgegrove and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package conf

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type failingProvider struct {
	err error
}

func (p failingProvider) Metadata() Metadata {
	return Named("failing")
}

func (p failingProvider) Data() (map[Profile]map[string]any, error) {
	return nil, p.err
}

type staticProvider struct {
	data map[Profile]map[string]any
}

func (p staticProvider) Metadata() Metadata {
	return Named("static")
}

func (p staticProvider) Data() (map[Profile]map[string]any, error) {
	return p.data, nil
}

func TestExtract(t *testing.T) {
	t.Run("later providers override earlier ones", func(t *testing.T) {
		var cfg struct {
			Host string `config:"host"`
			Port string `config:"port"`
		}

		err := Merge(
			Map{"host": "localhost", "port": "8080"},
			Map{"port": "9090"},
		).Extract(&cfg)
		require.NoError(t, err)
		require.Equal(t, "localhost", cfg.Host)
		require.Equal(t, "9090", cfg.Port)
	})

	t.Run("nested values override per leaf", func(t *testing.T) {
		var cfg struct {
			Server struct {
				Host string `config:"host"`
				Port string `config:"port"`
			} `config:"server"`
		}

		err := Merge(
			Map{"server": map[string]any{"host": "localhost", "port": "8080"}},
			Map{"server": map[string]any{"port": "9090"}},
		).Extract(&cfg)
		require.NoError(t, err)
		require.Equal(t, "localhost", cfg.Server.Host)
		require.Equal(t, "9090", cfg.Server.Port)
	})

	t.Run("missing required field fails with a MissingFieldError naming it", func(t *testing.T) {
		var cfg struct {
			ApiBaseUrl string `config:"api_base_url"`
		}

		err := Merge().Extract(&cfg)
		require.Error(t, err)

		var missing MissingFieldError
		require.ErrorAs(t, err, &missing)
		require.Equal(t, "api_base_url", missing.Field)
	})

	t.Run("all missing required fields are reported", func(t *testing.T) {
		var cfg struct {
			Host string `config:"host"`
			Port string `config:"port"`
		}

		err := Merge(Map{"host": "localhost"}).Extract(&cfg)
		require.Error(t, err)
		require.ErrorContains(t, err, "port")
		require.NotContains(t, err.Error(), "host")
	})

	t.Run("missing required secret field fails", func(t *testing.T) {
		var cfg struct {
			ApiKey Secret `config:"api_key"`
		}

		err := Merge().Extract(&cfg)
		require.Error(t, err)

		var missing MissingFieldError
		require.ErrorAs(t, err, &missing)
		require.Equal(t, "api_key", missing.Field)
	})

	t.Run("plain nested struct fields stay best effort", func(t *testing.T) {
		var cfg struct {
			Server struct {
				Host string `config:"host"`
			} `config:"server"`
		}

		require.NoError(t, Merge().Extract(&cfg))
	})

	t.Run("pointer fields are optional", func(t *testing.T) {
		var cfg struct {
			ApiBaseUrl *string `config:"api_base_url"`
			ApiKey     *string `config:"api_key"`
		}

		err := Merge(Map{"api_base_url": "https://x"}).Extract(&cfg)
		require.NoError(t, err)
		require.NotNil(t, cfg.ApiBaseUrl)
		require.Equal(t, "https://x", *cfg.ApiBaseUrl)
		require.Nil(t, cfg.ApiKey)
	})

	t.Run("zero field struct extracts from an empty merge", func(t *testing.T) {
		var cfg struct{}

		require.NoError(t, Merge().Extract(&cfg))
	})

	t.Run("durations decode from strings", func(t *testing.T) {
		var cfg struct {
			Timeout time.Duration `config:"timeout"`
		}

		err := Merge(Map{"timeout": "1m30s"}).Extract(&cfg)
		require.NoError(t, err)
		require.Equal(t, 90*time.Second, cfg.Timeout)
	})

	t.Run("provider failures are attributed", func(t *testing.T) {
		var cfg struct{}

		cause := errors.New("boom")
		err := Merge(failingProvider{err: cause}).Extract(&cfg)
		require.Error(t, err)

		var perr ProviderError
		require.ErrorAs(t, err, &perr)
		require.Equal(t, "failing", perr.Provider)
		require.ErrorIs(t, err, cause)
	})

	t.Run("target must be a non-nil struct pointer", func(t *testing.T) {
		testCases := []struct {
			name   string
			target any
		}{
			{name: "nil", target: nil},
			{name: "non-pointer", target: struct{}{}},
			{name: "pointer to non-struct", target: new(int)},
			{name: "nil struct pointer", target: (*struct{})(nil)},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				err := Merge().Extract(tc.target)

				var terr InvalidTargetError
				require.ErrorAs(t, err, &terr)
			})
		}
	})
}

func TestSelect(t *testing.T) {
	type config struct {
		ApiBaseUrl string `config:"api_base_url"`
	}

	t.Run("selected profile sees its own values", func(t *testing.T) {
		var cfg config

		err := Merge(Map{"api_base_url": "https://staging"}.InProfile("staging")).
			Select("staging").
			Extract(&cfg)
		require.NoError(t, err)
		require.Equal(t, "https://staging", cfg.ApiBaseUrl)
	})

	t.Run("default profile does not see values filed elsewhere", func(t *testing.T) {
		var cfg config

		err := Merge(Map{"api_base_url": "https://staging"}.InProfile("staging")).
			Extract(&cfg)
		require.Error(t, err)

		var missing MissingFieldError
		require.ErrorAs(t, err, &missing)
		require.Equal(t, "api_base_url", missing.Field)
	})

	t.Run("selected profile overrides default profile values", func(t *testing.T) {
		var cfg config

		err := Merge(
			Map{"api_base_url": "https://prod"},
			Map{"api_base_url": "https://staging"}.InProfile("staging"),
		).
			Select("staging").
			Extract(&cfg)
		require.NoError(t, err)
		require.Equal(t, "https://staging", cfg.ApiBaseUrl)
	})

	t.Run("default profile values remain visible under other profiles", func(t *testing.T) {
		var cfg struct {
			ApiBaseUrl string `config:"api_base_url"`
			MaxRetries string `config:"max_retries"`
		}

		err := Merge(
			Map{"max_retries": "3"},
			Map{"api_base_url": "https://staging"}.InProfile("staging"),
		).
			Select("staging").
			Extract(&cfg)
		require.NoError(t, err)
		require.Equal(t, "3", cfg.MaxRetries)
		require.Equal(t, "https://staging", cfg.ApiBaseUrl)
	})
}

func TestInProfile(t *testing.T) {
	t.Run("wraps arbitrary providers", func(t *testing.T) {
		var cfg struct {
			Host string `config:"host"`
		}

		err := Merge(InProfile("staging", Map{"host": "stage.local"})).
			Select("staging").
			Extract(&cfg)
		require.NoError(t, err)
		require.Equal(t, "stage.local", cfg.Host)
	})

	t.Run("overlays defaults under explicitly filed profile values", func(t *testing.T) {
		p := staticProvider{data: map[Profile]map[string]any{
			Default:   {"host": "prod", "port": "8080"},
			"staging": {"host": "stage"},
		}}

		data, err := InProfile("staging", p).Data()
		require.NoError(t, err)
		require.Equal(t, map[string]any{"host": "stage", "port": "8080"}, data["staging"])
	})

	t.Run("does not mutate the wrapped provider's dictionaries", func(t *testing.T) {
		defaults := map[string]any{"host": "prod"}
		staging := map[string]any{"port": "9090"}
		p := staticProvider{data: map[Profile]map[string]any{
			Default:   defaults,
			"staging": staging,
		}}

		_, err := InProfile("staging", p).Data()
		require.NoError(t, err)
		require.Equal(t, map[string]any{"host": "prod"}, defaults)
		require.Equal(t, map[string]any{"port": "9090"}, staging)
	})

	t.Run("propagates provider failures", func(t *testing.T) {
		cause := errors.New("boom")
		_, err := InProfile("staging", failingProvider{err: cause}).Data()
		require.ErrorIs(t, err, cause)
	})
}
